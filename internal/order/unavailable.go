package order

import (
	"context"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/db"
	"uniformshop-be/internal/logger"
)

type unavailableRepository struct{}

// NewUnavailableRepository serves empty reads and rejects writes when no
// database is configured.
func NewUnavailableRepository() Repository {
	return unavailableRepository{}
}

func warn(ctx context.Context, op string) {
	logger.FromCtx(ctx).Warn("cannot " + op + ": database not available")
}

func (unavailableRepository) CreateOrderTx(ctx context.Context, o *Order, items []ItemInput) (int, error) {
	return 0, apperr.Persistence("order.CreateOrderTx", db.ErrUnavailable)
}

func (unavailableRepository) GetByID(ctx context.Context, id int) (*Order, error) {
	warn(ctx, "get order")
	return nil, ErrOrderNotFound
}

func (unavailableRepository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	warn(ctx, "list user orders")
	return []Order{}, nil
}

func (unavailableRepository) ListAll(ctx context.Context, status *Status) ([]Order, error) {
	warn(ctx, "list orders")
	return []Order{}, nil
}

func (unavailableRepository) GetItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	warn(ctx, "get order items")
	return []OrderItem{}, nil
}

func (unavailableRepository) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	return nil, apperr.Persistence("order.UpdateStatus", db.ErrUnavailable)
}

func (unavailableRepository) Stats(ctx context.Context) (*Stats, error) {
	warn(ctx, "compute order stats")
	return newStats(), nil
}
