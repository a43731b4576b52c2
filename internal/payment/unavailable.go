package payment

import (
	"context"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/db"
	"uniformshop-be/internal/logger"
)

type unavailableRepository struct{}

func NewUnavailableRepository() Repository {
	return unavailableRepository{}
}

func (unavailableRepository) Create(ctx context.Context, orderID int, fileURL, fileName string) (*Slip, error) {
	return nil, apperr.Persistence("payment.Create", db.ErrUnavailable)
}

func (unavailableRepository) LatestForOrder(ctx context.Context, orderID int) (*Slip, error) {
	logger.FromCtx(ctx).Warn("cannot get payment slips: database not available")
	return nil, ErrSlipNotFound
}

func (unavailableRepository) ListAll(ctx context.Context) ([]Slip, error) {
	logger.FromCtx(ctx).Warn("cannot list payment slips: database not available")
	return []Slip{}, nil
}

func (unavailableRepository) Verify(ctx context.Context, slipID int, at time.Time) (*Slip, error) {
	return nil, apperr.Persistence("payment.Verify", db.ErrUnavailable)
}
