package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

var (
	ErrOrderNotPayable                = errors.New("order not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IOrderPaymentUseCase pays pending orders through the configured gateway.
//
// Requested behavior:
//   - Charge the stored totalPrice of a pending order and mark it as paid.
//   - A rejected payment leaves the order pending.
type IOrderPaymentUseCase interface {
	PayOrder(ctx context.Context, orderID string) (entities.PaymentResult, error)
}

type OrderPaymentUseCase struct {
	orders  IOrderUseCase
	gateway interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(orders IOrderUseCase, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{orders: orders, gateway: gateway}
}

func (u *OrderPaymentUseCase) PayOrder(ctx context.Context, orderID string) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] pay-order start raw_order_id=%q", orderID)
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Printf("[payment][usecase] invalid order_id (empty)")
		return entities.PaymentResult{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	order, ok := u.orders.GetByID(orderID)
	if !ok {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return entities.PaymentResult{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusPending {
		log.Printf("[payment][usecase] order not payable order_id=%s status=%s", orderID, order.Status)
		return entities.PaymentResult{}, ErrOrderNotPayable
	}

	log.Printf("[payment][usecase] calling payment gateway order_id=%s amount=%.2f", orderID, order.TotalPrice)
	result, err := u.gateway.Pay(ctx, orderID, order.TotalPrice)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, classifyGatewayError(err)
	}

	if err := u.orders.Pay(ctx, orderID); err != nil {
		log.Printf("[payment][usecase] mark paid failed order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, err
	}
	// The order may have been deleted or changed while the gateway was working.
	paid, ok := u.orders.GetByID(orderID)
	if !ok {
		log.Printf("[payment][usecase] order gone after payment order_id=%s payment_id=%s", orderID, result.Data.PaymentID)
		return entities.PaymentResult{}, ErrOrderNotFound
	}
	if paid.Status != entities.OrderStatusPaid {
		log.Printf("[payment][usecase] order not marked paid order_id=%s status=%s", orderID, paid.Status)
		return entities.PaymentResult{}, ErrOrderNotPayable
	}
	log.Printf("[payment][usecase] pay-order success order_id=%s payment_id=%s", orderID, result.Data.PaymentID)
	return result, nil
}

// classifyGatewayError maps provider error bodies onto sentinel errors. Errors
// already typed, such as *entities.PaymentError or context errors, pass through.
func classifyGatewayError(err error) error {
	var payErr *entities.PaymentError
	if errors.As(err, &payErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
