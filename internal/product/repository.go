package product

import (
	"context"
	"database/sql"
	"errors"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	NamesByIDs(ctx context.Context, ids []int) (map[int]string, error)
	Create(ctx context.Context, in Input) (*Product, error)
	Update(ctx context.Context, id int, in Input) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, image, stock, size, color, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.Stock, &p.Size, &p.Color, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, apperr.Persistence("product.List", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperr.Persistence("product.List", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("product.List", err)
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("product.GetByID", err)
	}
	return p, nil
}

func (r *repository) NamesByIDs(ctx context.Context, ids []int) (map[int]string, error) {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ids64 := make([]int64, len(ids))
	for i, id := range ids {
		ids64[i] = int64(id)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM products WHERE id = ANY($1)`, pq.Array(ids64))
	if err != nil {
		return nil, apperr.Persistence("product.NamesByIDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, apperr.Persistence("product.NamesByIDs", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

func (r *repository) Create(ctx context.Context, in Input) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, image, stock, size, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		in.Name, in.Description, in.Price, in.Image, in.Stock, in.Size, in.Color,
	)

	p, err := scanProduct(row)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product", zap.String("name", in.Name), zap.Error(err))
		return nil, apperr.Persistence("product.Create", err)
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, id int, in Input) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, image = $4,
			stock = $5, size = $6, color = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+productColumns,
		in.Name, in.Description, in.Price, in.Image, in.Stock, in.Size, in.Color, id,
	)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update product", zap.Int("product_id", id), zap.Error(err))
		return nil, apperr.Persistence("product.Update", err)
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperr.Persistence("product.Delete", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Persistence("product.Delete", err)
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
