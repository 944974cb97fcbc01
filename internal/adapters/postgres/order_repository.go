// Package postgres implements order persistence on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/addispay/yagoutpay-service/internal/domain"
)

// OrderRepository implements ports.OrderRepository using a pgx pool.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new PostgreSQL order repository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create stores a new pending order.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	amount := pgtype.Numeric{}
	if err := amount.Scan(order.Amount.String()); err != nil {
		return fmt.Errorf("convert amount: %w", err)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO orders (id, order_no, amount, currency, status, customer_email, gateway_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.OrderNo, amount, order.Currency, string(order.Status),
		order.CustomerEmail, order.GatewayStatus, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateOrder
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// GetByOrderNo retrieves an order by order number.
func (r *OrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	var (
		order  domain.Order
		amount pgtype.Numeric
		status string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, order_no, amount, currency, status, customer_email, gateway_status, created_at, updated_at
		FROM orders WHERE order_no = $1`, orderNo,
	).Scan(&order.ID, &order.OrderNo, &amount, &order.Currency, &status,
		&order.CustomerEmail, &order.GatewayStatus, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	order.Status = domain.OrderStatus(status)
	order.Amount, err = pgNumericToDecimal(amount)
	if err != nil {
		return nil, fmt.Errorf("read amount: %w", err)
	}
	return &order, nil
}

// UpdateStatus transitions an order after callback verification.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderNo string, status domain.OrderStatus, gatewayStatus string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $2, gateway_status = $3, updated_at = now()
		WHERE order_no = $1`,
		orderNo, string(status), gatewayStatus,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// pgNumericToDecimal converts pgtype.Numeric to decimal.Decimal.
func pgNumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	var dec decimal.Decimal
	str, err := n.MarshalJSON()
	if err != nil {
		return dec, fmt.Errorf("marshal numeric: %w", err)
	}
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	return decimal.NewFromString(string(str))
}
