package request

import (
	"errors"
	"strings"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase"
)

var ErrInvalidStatusFilter = errors.New("invalid status filter")

// CreateOrderRequest is the body of POST /order/create.
type CreateOrderRequest struct {
	HouseInfo    entities.HouseInfo `json:"houseInfo" binding:"required"`
	CheckInDate  string             `json:"checkInDate" binding:"required"`
	CheckOutDate string             `json:"checkOutDate" binding:"required"`
	Nights       int                `json:"nights" binding:"required,min=1"`
	GuestInfo    entities.GuestInfo `json:"guestInfo"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		HouseInfo:    r.HouseInfo,
		CheckInDate:  strings.TrimSpace(r.CheckInDate),
		CheckOutDate: strings.TrimSpace(r.CheckOutDate),
		Nights:       r.Nights,
		GuestInfo:    r.GuestInfo,
	}
}

// PayOrderRequest is the body of POST /order/pay/{id}. The amount charged is
// always the stored order total; Amount is informational.
type PayOrderRequest struct {
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}

// CancelOrderRequest is the optional body of POST /order/cancel/{id}.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ListOrdersQuery holds the query string of GET /order/list.
type ListOrdersQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Status   string `form:"status"`
}

// SearchOrdersQuery holds the query string of GET /order/search.
type SearchOrdersQuery struct {
	Keyword   string `form:"keyword"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Status    string `form:"status"`
}

func (q SearchOrdersQuery) ToParams() (usecase.SearchParams, error) {
	status, err := ParseStatusFilter(q.Status)
	if err != nil {
		return usecase.SearchParams{}, err
	}
	return usecase.SearchParams{
		Keyword:   q.Keyword,
		Status:    status,
		StartDate: strings.TrimSpace(q.StartDate),
		EndDate:   strings.TrimSpace(q.EndDate),
	}, nil
}

// ParseStatusFilter accepts an empty value (meaning "all") or any known status.
func ParseStatusFilter(raw string) (entities.OrderStatus, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return entities.OrderStatusAll, nil
	}
	status := entities.OrderStatus(raw)
	if !status.IsValid() {
		return "", ErrInvalidStatusFilter
	}
	return status, nil
}

// FavoriteRequest is the body of POST /favorites and POST /favorites/toggle.
type FavoriteRequest struct {
	entities.HouseData
}
