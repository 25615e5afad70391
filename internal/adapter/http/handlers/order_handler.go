package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "my_trip/internal/adapter/http/dto/request"
	response "my_trip/internal/adapter/http/dto/response"
	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase"
	"my_trip/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidRequest      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errOrderNotFound       = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
)

// OrderHandler exposes the local order store with the paths of the remote order API.
type OrderHandler struct {
	orders   usecase.IOrderUseCase
	payments usecase.IOrderPaymentUseCase
	refresh  usecase.IRefreshController
	home     usecase.IHomeUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, payments usecase.IOrderPaymentUseCase, refresh usecase.IRefreshController, home usecase.IHomeUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, payments: payments, refresh: refresh, home: home}
}

// ListOrders godoc
// @Summary  List orders
// @Tags     orders
// @Param    page     query int    false "page (default 1)"
// @Param    pageSize query int    false "page size (default 20)"
// @Param    status   query string false "all|pending|paid|completed|cancelled"
// @Success  200 {object} response.Envelope{data=response.OrderPageResponse}
// @Failure  400 {object} pkg.HTTPError
// @Router   /order/list [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q request.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	status, err := request.ParseStatusFilter(q.Status)
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = usecase.DefaultPage
	}
	if pageSize < 1 {
		pageSize = usecase.DefaultPageSize
	}
	list, total := usecase.Paginate(h.orders.FilteredBy(status), page, pageSize)
	c.JSON(http.StatusOK, response.Wrap(response.FromOrderPage(list, total, page, pageSize)))
}

// GetOrderDetail godoc
// @Summary  Get an order
// @Tags     orders
// @Param    id path string true "order id"
// @Success  200 {object} response.Envelope{data=response.OrderResponse}
// @Failure  404 {object} pkg.HTTPError
// @Router   /order/detail/{id} [get]
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	order, ok := h.orders.GetByID(c.Param("id"))
	if !ok {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Wrap(response.FromOrder(order)))
}

// CreateOrder godoc
// @Summary  Create a pending order
// @Tags     orders
// @Param    body body request.CreateOrderRequest true "order"
// @Success  201 {object} response.Envelope{data=response.OrderResponse}
// @Failure  400 {object} pkg.HTTPError
// @Router   /order/create [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if strings.TrimSpace(payload.HouseInfo.HouseID) == "" {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order := h.orders.Create(c.Request.Context(), payload.ToInput())
	c.JSON(http.StatusCreated, response.Wrap(response.FromOrder(order)))
}

// PayOrder godoc
// @Summary  Pay a pending order
// @Tags     orders
// @Param    id   path string                  true  "order id"
// @Param    body body request.PayOrderRequest false "payment"
// @Success  200 {object} response.Envelope{data=entities.PaymentResult}
// @Failure  402 {object} entities.PaymentError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /order/pay/{id} [post]
func (h *OrderHandler) PayOrder(c *gin.Context) {
	orderID := c.Param("id")
	var payload request.PayOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	log.Printf("[order][handler] pay start order_id=%s payment_method=%s", orderID, payload.PaymentMethod)

	result, err := h.payments.PayOrder(c.Request.Context(), orderID)
	if err != nil {
		var payErr *entities.PaymentError
		if errors.As(err, &payErr) {
			log.Printf("[order][handler] pay rejected order_id=%s code=%s", orderID, payErr.Code)
			c.JSON(http.StatusPaymentRequired, payErr)
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Wrap(result))
}

// CancelOrder godoc
// @Summary  Cancel an order
// @Tags     orders
// @Param    id   path string                     true  "order id"
// @Param    body body request.CancelOrderRequest false "reason"
// @Success  200 {object} response.Envelope{data=response.OrderResponse}
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /order/cancel/{id} [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}
	log.Printf("[order][handler] cancel order_id=%s reason=%q", c.Param("id"), payload.Reason)
	h.transition(c, h.orders.Cancel)
}

// CompleteOrder godoc
// @Summary  Complete an order
// @Tags     orders
// @Param    id path string true "order id"
// @Success  200 {object} response.Envelope{data=response.OrderResponse}
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /order/complete/{id} [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, h.orders.Complete)
}

// transition answers 404 for unknown ids; the store itself treats them as a no-op.
func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, orderID string) error) {
	orderID := c.Param("id")
	if _, ok := h.orders.GetByID(orderID); !ok {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return
	}
	if err := apply(c.Request.Context(), orderID); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, ok := h.orders.GetByID(orderID)
	if !ok {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Wrap(response.FromOrder(order)))
}

// DeleteOrder godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    id path string true "order id"
// @Success  200 {object} response.Envelope
// @Router   /order/delete/{id} [post]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	h.orders.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, response.Wrap(nil))
}

// GetOrderStatistics godoc
// @Summary  Order counts and amounts per status
// @Tags     orders
// @Success  200 {object} response.Envelope{data=response.OrderStatisticsResponse}
// @Router   /order/statistics [get]
func (h *OrderHandler) GetOrderStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, response.Wrap(response.FromStatistics(h.orders.Statistics())))
}

// SearchOrders godoc
// @Summary  Search orders
// @Tags     orders
// @Param    keyword   query string false "matches order id, house name or location"
// @Param    startDate query string false "check-in from (YYYY-MM-DD)"
// @Param    endDate   query string false "check-in to (YYYY-MM-DD)"
// @Param    status    query string false "all|pending|paid|completed|cancelled"
// @Success  200 {object} response.Envelope{data=[]response.OrderResponse}
// @Failure  400 {object} pkg.HTTPError
// @Router   /order/search [get]
func (h *OrderHandler) SearchOrders(c *gin.Context) {
	var q request.SearchOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	params, err := q.ToParams()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Wrap(response.FromOrders(h.orders.Search(params))))
}

// SeedOrders godoc
// @Summary  Fill an empty store with demo orders
// @Tags     orders
// @Param    fetch query bool false "load one houselist page before seeding"
// @Success  200 {object} response.Envelope{data=[]response.OrderResponse}
// @Router   /order/seed [post]
func (h *OrderHandler) SeedOrders(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("fetch") == "true" && h.home != nil {
		if err := h.home.FetchHouselist(ctx); err != nil {
			log.Printf("[order][handler] seed houselist fetch failed; continuing err=%v", err)
		}
	}
	h.orders.EnsureSeeded(ctx)
	c.JSON(http.StatusOK, response.Wrap(response.FromOrders(h.orders.List())))
}

// RefreshOrders godoc
// @Summary  Reload orders from the durable store
// @Tags     orders
// @Success  200 {object} response.Envelope{data=response.RefreshResponse}
// @Failure  500 {object} pkg.HTTPError
// @Router   /order/refresh [post]
func (h *OrderHandler) RefreshOrders(c *gin.Context) {
	if err := h.refresh.Refresh(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Wrap(response.RefreshResponse{Count: h.orders.Count()}))
}

func mapOrderError(err error) *pkg.AppError {
	var transitionErr *entities.InvalidStatusTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return errOrderNotFound
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Only pending orders can be paid", http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Invalid order status transition", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
