package user

import (
	"context"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/db"
	"uniformshop-be/internal/logger"
)

type unavailableRepository struct{}

// NewUnavailableRepository is used when no database is configured: lookups
// find nothing and upserts fail with a persistence error.
func NewUnavailableRepository() Repository {
	return unavailableRepository{}
}

func (unavailableRepository) Upsert(ctx context.Context, p UpsertParams) (*User, error) {
	return nil, apperr.Persistence("user.Upsert", db.ErrUnavailable)
}

func (unavailableRepository) GetByID(ctx context.Context, id int) (*User, error) {
	logger.FromCtx(ctx).Warn("cannot get user: database not available")
	return nil, ErrUserNotFound
}
