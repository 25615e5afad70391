package entities

import "time"

// PaymentFailedCode is the code carried by every simulated payment failure.
const PaymentFailedCode = "PAYMENT_FAILED"

// PaymentData describes a settled payment.
type PaymentData struct {
	OrderID     string    `json:"orderId"`
	Amount      float64   `json:"amount"`
	PaymentID   string    `json:"paymentId"`
	PaymentTime time.Time `json:"paymentTime"`
}

// PaymentResult is the successful outcome of a payment attempt.
type PaymentResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    PaymentData `json:"data"`
}

// PaymentError is the structured rejection of a payment attempt.
// Callers branch on it with errors.As.
type PaymentError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *PaymentError) Error() string {
	return e.Code + ": " + e.Message
}
