// Package memory provides an in-memory OrderRepository used when no database
// is configured. Suitable for demos and tests; state is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/addispay/yagoutpay-service/internal/domain"
)

// OrderRepository is a mutex-guarded map keyed by order number.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderRepository creates an empty in-memory repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*domain.Order)}
}

// Create stores a new pending order.
func (r *OrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[order.OrderNo]; exists {
		return domain.ErrDuplicateOrder
	}
	cp := *order
	r.orders[order.OrderNo] = &cp
	return nil
}

// GetByOrderNo retrieves an order by order number.
func (r *OrderRepository) GetByOrderNo(_ context.Context, orderNo string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[orderNo]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

// UpdateStatus transitions an order after callback verification.
func (r *OrderRepository) UpdateStatus(_ context.Context, orderNo string, status domain.OrderStatus, gatewayStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderNo]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	order.GatewayStatus = gatewayStatus
	order.UpdatedAt = time.Now().UTC()
	return nil
}
