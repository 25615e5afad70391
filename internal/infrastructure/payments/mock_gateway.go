package payments

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"
)

const (
	DefaultMockDelay       = 2 * time.Second
	DefaultMockSuccessRate = 0.9

	mockSuccessMessage = "支付成功"
	mockFailureMessage = "支付失败，请重试"
)

// MockPaymentGateway simulates a payment provider: it waits Delay and then
// succeeds with probability SuccessRate.
type MockPaymentGateway struct {
	Delay       time.Duration
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

var _ interfaces.IPaymentGateway = (*MockPaymentGateway)(nil)

func NewMockPaymentGateway(delay time.Duration, successRate float64) *MockPaymentGateway {
	return &MockPaymentGateway{
		Delay:       delay,
		SuccessRate: successRate,
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x706179)),
		now:         time.Now,
	}
}

// WithRand and WithClock make outcomes and ids deterministic in tests.
func (g *MockPaymentGateway) WithRand(r *rand.Rand) *MockPaymentGateway {
	g.rng = r
	return g
}

func (g *MockPaymentGateway) WithClock(now func() time.Time) *MockPaymentGateway {
	g.now = now
	return g
}

// Pay returns a PaymentResult on success and a *entities.PaymentError on a
// simulated rejection. A cancelled ctx aborts the wait with ctx.Err().
func (g *MockPaymentGateway) Pay(ctx context.Context, orderID string, amount float64) (entities.PaymentResult, error) {
	log.Printf("[payment][mock] pay start order_id=%s amount=%.2f delay=%s", orderID, amount, g.Delay)

	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Printf("[payment][mock] pay cancelled order_id=%s err=%v", orderID, ctx.Err())
			return entities.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return entities.PaymentResult{}, err
	}

	g.mu.Lock()
	roll := g.rng.Float64()
	g.mu.Unlock()

	if roll >= g.SuccessRate {
		log.Printf("[payment][mock] pay rejected order_id=%s", orderID)
		return entities.PaymentResult{}, &entities.PaymentError{
			Success: false,
			Message: mockFailureMessage,
			Code:    entities.PaymentFailedCode,
		}
	}

	now := g.now().UTC()
	result := entities.PaymentResult{
		Success: true,
		Message: mockSuccessMessage,
		Data: entities.PaymentData{
			OrderID:     orderID,
			Amount:      amount,
			PaymentID:   fmt.Sprintf("PAY%d", now.UnixMilli()),
			PaymentTime: now,
		},
	}
	log.Printf("[payment][mock] pay success order_id=%s payment_id=%s", orderID, result.Data.PaymentID)
	return result, nil
}
