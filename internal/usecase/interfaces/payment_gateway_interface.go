package interfaces

import (
	"context"

	"my_trip/internal/domain/entities"
)

// IPaymentGateway abstracts the payment provider used at checkout.
//
// The default implementation is a local simulation; a rejected payment is
// returned as *entities.PaymentError.
type IPaymentGateway interface {
	Pay(ctx context.Context, orderID string, amount float64) (entities.PaymentResult, error)
}
