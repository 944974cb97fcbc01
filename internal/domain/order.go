package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks a checkout attempt through the redirect round trip.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending" // form issued, gateway not heard from yet
	OrderStatusPaid    OrderStatus = "paid"    // verified success callback
	OrderStatusFailed  OrderStatus = "failed"  // verified failure callback or rejected verification
)

// Order is the persisted record of one checkout attempt. It is created
// pending before the browser is redirected and transitioned exactly once by
// the verified callback.
type Order struct {
	ID            uuid.UUID
	OrderNo       string
	Amount        decimal.Decimal
	Currency      string
	Status        OrderStatus
	CustomerEmail string
	GatewayStatus string // raw status string reported by the gateway
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPendingOrder builds the pending record stored before redirecting.
func NewPendingOrder(req PaymentRequest) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:            uuid.New(),
		OrderNo:       req.Transaction.OrderNo,
		Amount:        req.Transaction.Amount,
		Currency:      req.Transaction.Currency,
		Status:        OrderStatusPending,
		CustomerEmail: req.Customer.EmailID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
