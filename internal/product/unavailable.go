package product

import (
	"context"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/db"
	"uniformshop-be/internal/logger"
)

type unavailableRepository struct{}

func NewUnavailableRepository() Repository {
	return unavailableRepository{}
}

func (unavailableRepository) List(ctx context.Context) ([]Product, error) {
	logger.FromCtx(ctx).Warn("cannot list products: database not available")
	return []Product{}, nil
}

func (unavailableRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	logger.FromCtx(ctx).Warn("cannot get product: database not available")
	return nil, ErrProductNotFound
}

func (unavailableRepository) NamesByIDs(ctx context.Context, ids []int) (map[int]string, error) {
	return map[int]string{}, nil
}

func (unavailableRepository) Create(ctx context.Context, in Input) (*Product, error) {
	return nil, apperr.Persistence("product.Create", db.ErrUnavailable)
}

func (unavailableRepository) Update(ctx context.Context, id int, in Input) (*Product, error) {
	return nil, apperr.Persistence("product.Update", db.ErrUnavailable)
}

func (unavailableRepository) Delete(ctx context.Context, id int) error {
	return apperr.Persistence("product.Delete", db.ErrUnavailable)
}
