package models

import "time"

// Payment statuses as emitted by the backend.
const (
	PaymentPending         = "PENDING"
	PaymentCompleted       = "COMPLETED"
	PaymentFailed          = "FAILED"
	PaymentRefunded        = "REFUNDED"
	PaymentCancelledByUser = "CANCELLED_BY_USER"
)

// Payment is the payment record returned by the payment endpoints.
type Payment struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	Username      string     `json:"username"`
	OrderID       int64      `json:"orderId"`
	Amount        float64    `json:"amount"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
}

// PaymentRequest is the process-payment payload.
type PaymentRequest struct {
	OrderID       int64   `json:"orderId"       validate:"required"`
	Amount        float64 `json:"amount"        validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}
