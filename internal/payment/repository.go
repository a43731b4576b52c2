package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, orderID int, fileURL, fileName string) (*Slip, error)
	LatestForOrder(ctx context.Context, orderID int) (*Slip, error)
	ListAll(ctx context.Context) ([]Slip, error)
	Verify(ctx context.Context, slipID int, at time.Time) (*Slip, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const slipColumns = `id, order_id, file_url, file_name, uploaded_at, verified, verified_at, created_at`

func scanSlip(row interface{ Scan(...any) error }) (*Slip, error) {
	var s Slip
	if err := row.Scan(
		&s.ID, &s.OrderID, &s.FileURL, &s.FileName,
		&s.UploadedAt, &s.Verified, &s.VerifiedAt, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, orderID int, fileURL, fileName string) (*Slip, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO payment_slips (order_id, file_url, file_name)
		VALUES ($1, $2, $3)
		RETURNING `+slipColumns,
		orderID, fileURL, fileName,
	)

	s, err := scanSlip(row)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert payment slip",
			zap.Int("order_id", orderID),
			zap.Error(err),
		)
		return nil, apperr.Persistence("payment.Create", err)
	}
	return s, nil
}

func (r *repository) LatestForOrder(ctx context.Context, orderID int) (*Slip, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+slipColumns+`
		FROM payment_slips
		WHERE order_id = $1
		ORDER BY uploaded_at DESC, id DESC
		LIMIT 1
	`, orderID)

	s, err := scanSlip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlipNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("payment.LatestForOrder", err)
	}
	return s, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Slip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+slipColumns+` FROM payment_slips ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, apperr.Persistence("payment.ListAll", err)
	}
	defer rows.Close()

	slips := []Slip{}
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, apperr.Persistence("payment.ListAll", err)
		}
		slips = append(slips, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("payment.ListAll", err)
	}
	return slips, nil
}

func (r *repository) Verify(ctx context.Context, slipID int, at time.Time) (*Slip, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE payment_slips
		SET verified = TRUE, verified_at = $1
		WHERE id = $2
		RETURNING `+slipColumns,
		at, slipID,
	)

	s, err := scanSlip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlipNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("payment.Verify", err)
	}
	return s, nil
}
