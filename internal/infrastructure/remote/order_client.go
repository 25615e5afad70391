package remote

import (
	"context"
	"net/url"
	"strconv"

	"my_trip/internal/domain/entities"
)

type ListOrdersParams struct {
	Page     int
	PageSize int
	Status   entities.OrderStatus
}

type OrderPage struct {
	List     []entities.Order `json:"list"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type CreateOrderRequest struct {
	HouseInfo    entities.HouseInfo `json:"houseInfo"`
	CheckInDate  string             `json:"checkInDate"`
	CheckOutDate string             `json:"checkOutDate"`
	Nights       int                `json:"nights"`
	GuestInfo    entities.GuestInfo `json:"guestInfo"`
}

type PayOrderRequest struct {
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}

type OrderStatistics struct {
	Total       int                              `json:"total"`
	Counts      map[entities.OrderStatus]int     `json:"counts"`
	TotalAmount map[entities.OrderStatus]float64 `json:"totalAmount"`
}

type SearchOrdersParams struct {
	Keyword   string
	StartDate string
	EndDate   string
	Status    entities.OrderStatus
}

// OrderClient is the remote order API.
type OrderClient struct {
	*Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{Client: c}
}

// ListOrders defaults to page 1 with 20 orders per page.
func (c *OrderClient) ListOrders(ctx context.Context, params ListOrdersParams) (OrderPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}
	q := url.Values{
		"page":     {strconv.Itoa(params.Page)},
		"pageSize": {strconv.Itoa(params.PageSize)},
	}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}

	var out OrderPage
	err := c.get(ctx, "/order/list", q, &out)
	return out, err
}

func (c *OrderClient) GetOrderDetail(ctx context.Context, orderID string) (entities.Order, error) {
	var out entities.Order
	err := c.get(ctx, "/order/detail/"+url.PathEscape(orderID), nil, &out)
	return out, err
}

func (c *OrderClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (entities.Order, error) {
	var out entities.Order
	err := c.post(ctx, "/order/create", req, &out)
	return out, err
}

func (c *OrderClient) PayOrder(ctx context.Context, orderID string, req PayOrderRequest) (entities.PaymentResult, error) {
	var out entities.PaymentResult
	err := c.post(ctx, "/order/pay/"+url.PathEscape(orderID), req, &out)
	return out, err
}

func (c *OrderClient) CancelOrder(ctx context.Context, orderID, reason string) (entities.Order, error) {
	var out entities.Order
	err := c.post(ctx, "/order/cancel/"+url.PathEscape(orderID), map[string]string{"reason": reason}, &out)
	return out, err
}

func (c *OrderClient) DeleteOrder(ctx context.Context, orderID string) error {
	return c.post(ctx, "/order/delete/"+url.PathEscape(orderID), nil, nil)
}

func (c *OrderClient) CompleteOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var out entities.Order
	err := c.post(ctx, "/order/complete/"+url.PathEscape(orderID), nil, &out)
	return out, err
}

func (c *OrderClient) GetOrderStatistics(ctx context.Context) (OrderStatistics, error) {
	var out OrderStatistics
	err := c.get(ctx, "/order/statistics", nil, &out)
	return out, err
}

func (c *OrderClient) SearchOrders(ctx context.Context, params SearchOrdersParams) ([]entities.Order, error) {
	q := url.Values{}
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.StartDate != "" {
		q.Set("startDate", params.StartDate)
	}
	if params.EndDate != "" {
		q.Set("endDate", params.EndDate)
	}
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}

	var out []entities.Order
	err := c.get(ctx, "/order/search", q, &out)
	return out, err
}
