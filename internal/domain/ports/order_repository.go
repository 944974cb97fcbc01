package ports

import (
	"context"

	"github.com/addispay/yagoutpay-service/internal/domain"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create stores a new pending order. Returns domain.ErrDuplicateOrder
	// when the order number is already taken.
	Create(ctx context.Context, order *domain.Order) error

	// GetByOrderNo retrieves an order by its gateway-facing order number.
	// Returns domain.ErrOrderNotFound when absent.
	GetByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error)

	// UpdateStatus transitions an order after callback verification.
	// gatewayStatus is the raw status string the gateway reported.
	UpdateStatus(ctx context.Context, orderNo string, status domain.OrderStatus, gatewayStatus string) error
}
