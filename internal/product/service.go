package product

import (
	"context"
	"errors"
	"time"

	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Names(ctx context.Context, ids []int) (map[int]string, error)
	Create(ctx context.Context, in Input) (*Product, error)
	Update(ctx context.Context, id int, in Input) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var inputMessages = validation.Messages{
	"Name.notblank": "ต้องระบุชื่อสินค้า",
	"Name.max":      "ชื่อสินค้ายาวเกินไป",
	"Price.gte":     "ราคาต้องไม่ติดลบ",
	"Stock.gte":     "จำนวนสต็อกต้องไม่ติดลบ",
	"Size.max":      "ขนาดยาวเกินไป",
	"Color.max":     "สียาวเกินไป",
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	start := time.Now()

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Debug("list products success",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

// GetByID returns nil without error when the product does not exist.
func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *service) Names(ctx context.Context, ids []int) (map[int]string, error) {
	return s.repo.NamesByIDs(ctx, ids)
}

func (s *service) Create(ctx context.Context, in Input) (*Product, error) {
	actor, err := auth.RequireAdmin(ctx, "product.Create")
	if err != nil {
		return nil, err
	}
	if err := validation.Struct("product.Create", in, inputMessages); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int("product_id", p.ID),
		zap.Int("admin_id", actor.UserID),
	)
	return p, nil
}

func (s *service) Update(ctx context.Context, id int, in Input) (*Product, error) {
	if _, err := auth.RequireAdmin(ctx, "product.Update"); err != nil {
		return nil, err
	}
	if err := validation.Struct("product.Update", in, inputMessages); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id int) error {
	actor, err := auth.RequireAdmin(ctx, "product.Delete")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.Int("product_id", id),
		zap.Int("admin_id", actor.UserID),
	)
	return nil
}
