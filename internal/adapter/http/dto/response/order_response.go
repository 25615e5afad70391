package response

import (
	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase"

	"golang.org/x/text/language"
)

// Envelope wraps every successful payload as {"data": ...}.
type Envelope struct {
	Data any `json:"data"`
}

func Wrap(data any) Envelope {
	return Envelope{Data: data}
}

// OrderResponse is an order plus its display status.
type OrderResponse struct {
	entities.Order
	StatusText string `json:"statusText"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{Order: o, StatusText: entities.StatusText(o.Status, language.SimplifiedChinese)}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

type OrderPageResponse struct {
	List     []OrderResponse `json:"list"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

func FromOrderPage(orders []entities.Order, total, page, pageSize int) OrderPageResponse {
	return OrderPageResponse{List: FromOrders(orders), Total: total, Page: page, PageSize: pageSize}
}

type OrderStatisticsResponse struct {
	Total       int                `json:"total"`
	Counts      map[string]int     `json:"counts"`
	TotalAmount map[string]float64 `json:"totalAmount"`
}

func FromStatistics(s usecase.OrderStatistics) OrderStatisticsResponse {
	out := OrderStatisticsResponse{
		Total:       s.Total,
		Counts:      make(map[string]int, len(s.Counts)),
		TotalAmount: make(map[string]float64, len(s.TotalAmount)),
	}
	for k, v := range s.Counts {
		out.Counts[string(k)] = v
	}
	for k, v := range s.TotalAmount {
		out.TotalAmount[string(k)] = v
	}
	return out
}

type RefreshResponse struct {
	Count int `json:"count"`
}

type FavoriteStateResponse struct {
	HouseID    string `json:"houseId"`
	IsFavorite bool   `json:"isFavorite"`
	Count      int    `json:"count"`
}
