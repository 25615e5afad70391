package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultMercadoPagoPaymentMethod = "pix"

// paymentCreator is the part of payment.Client used by the gateway.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges orders through Mercado Pago. Any provider status
// other than "approved" is reported as a *entities.PaymentError.
type MercadoPagoGateway struct {
	client        paymentCreator
	paymentMethod string
	now           func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(cfg)), nil
}

func newMercadoPagoGateway(client paymentCreator) *MercadoPagoGateway {
	method := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYMENT_METHOD"))
	if method == "" {
		method = defaultMercadoPagoPaymentMethod
	}
	return &MercadoPagoGateway{client: client, paymentMethod: method, now: time.Now}
}

func (g *MercadoPagoGateway) Pay(ctx context.Context, orderID string, amount float64) (entities.PaymentResult, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start order_id=%s amount=%.2f", orderID, amount)

	req, err := g.buildRequest(orderID, amount)
	if err != nil {
		log.Printf("[payment][gateway] build request failed order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][gateway] create done order_id=%s provider_payment_id=%d provider_status=%s", orderID, resp.ID, resp.Status)

	if resp.Status != "approved" {
		return entities.PaymentResult{}, &entities.PaymentError{
			Success: false,
			Message: fmt.Sprintf("%s (%s)", mockFailureMessage, resp.Status),
			Code:    entities.PaymentFailedCode,
		}
	}

	return entities.PaymentResult{
		Success: true,
		Message: mockSuccessMessage,
		Data: entities.PaymentData{
			OrderID:     orderID,
			Amount:      amount,
			PaymentID:   fmt.Sprintf("%d", resp.ID),
			PaymentTime: g.now().UTC(),
		},
	}, nil
}

// buildRequest goes through a generic map so sandbox payer defaults can be
// filled the same way whatever the SDK struct layout is.
func (g *MercadoPagoGateway) buildRequest(orderID string, amount float64) (payment.Request, error) {
	reqMap := map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Order %s", orderID),
		"external_reference": orderID,
		"payment_method_id":  g.paymentMethod,
	}
	ensurePayerDefaults(reqMap)

	b, err := json.Marshal(reqMap)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

func ensurePayerDefaults(m map[string]any) {
	payer := map[string]any{"type": "customer"}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		// Sandbox-safe fallback recommended by Mercado Pago examples.
		payer["email"] = "test_user_br@testuser.com"
	}
	m["payer"] = payer
}

// IsMockEnabled reports whether PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK)
// forces the local simulation.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// NewGatewayFromEnv returns the Mercado Pago gateway when an access token is set
// and mock mode is not forced, and the mock gateway otherwise.
func NewGatewayFromEnv(mockDelay time.Duration, mockSuccessRate float64) interfaces.IPaymentGateway {
	token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	if !IsMockEnabled() && strings.TrimSpace(token) != "" {
		gw, err := NewMercadoPagoGateway(token)
		if err == nil {
			return gw
		}
		log.Printf("[payment][gateway] Mercado Pago not configured, using mock err=%v", err)
	}
	log.Printf("[payment][gateway] mock mode enabled delay=%s success_rate=%.2f", mockDelay, mockSuccessRate)
	return NewMockPaymentGateway(mockDelay, mockSuccessRate)
}
