package order

import (
	"context"
	"database/sql"
	"errors"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx writes the order and its items in one transaction and
	// returns the new order id.
	CreateOrderTx(ctx context.Context, o *Order, items []ItemInput) (int, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	ListByUser(ctx context.Context, userID int) ([]Order, error)
	ListAll(ctx context.Context, status *Status) ([]Order, error)
	GetItems(ctx context.Context, orderID int) ([]OrderItem, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Order, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, student_name, student_room, student_number, student_id,
	total_price, status, notes, created_at, updated_at`

const itemColumns = `id, order_id, product_id, quantity, price, size, color, created_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	if err := row.Scan(
		&o.ID, &o.UserID, &o.StudentName, &o.StudentRoom, &o.StudentNumber, &o.StudentID,
		&o.TotalPrice, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) CreateOrderTx(ctx context.Context, o *Order, items []ItemInput) (int, error) {
	if len(items) == 0 {
		return 0, ErrNoItems
	}

	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"), zap.String("method", "CreateOrderTx"))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Persistence("order.CreateOrderTx", err)
	}
	defer tx.Rollback()

	// 1. Insert order
	var id int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, student_name, student_room, student_number,
			student_id, total_price, status, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		o.UserID,
		o.StudentName,
		o.StudentRoom,
		o.StudentNumber,
		o.StudentID,
		o.TotalPrice,
		o.Status,
		o.Notes,
	).Scan(&id)
	if err != nil {
		log.Error("db: failed to insert order", zap.Error(err))
		return 0, apperr.Persistence("order.CreateOrderTx", err)
	}

	// 2. Insert items in input order
	for i, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, quantity, price, size, color
			) VALUES ($1,$2,$3,$4,$5,$6)
		`,
			id,
			item.ProductID,
			item.Quantity,
			item.Price,
			item.Size,
			item.Color,
		)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Int("order_id", id),
				zap.Int("index", i),
				zap.Error(err),
			)
			return 0, apperr.Persistence("order.CreateOrderTx", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Persistence("order.CreateOrderTx", err)
	}

	o.ID = id
	return id, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("order.GetByID", err)
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	return r.list(ctx, "order.ListByUser",
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
}

func (r *repository) ListAll(ctx context.Context, status *Status) ([]Order, error) {
	if status != nil {
		return r.list(ctx, "order.ListAll",
			`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at DESC, id DESC`,
			*status,
		)
	}
	return r.list(ctx, "order.ListAll",
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`,
	)
}

func (r *repository) list(ctx context.Context, op, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, apperr.Persistence(op, err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return orders, nil
}

func (r *repository) GetItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, apperr.Persistence("order.GetItems", err)
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Quantity,
			&it.Price, &it.Size, &it.Color, &it.CreatedAt,
		); err != nil {
			return nil, apperr.Persistence("order.GetItems", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("order.GetItems", err)
	}
	return items, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns,
		status, id,
	)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("order.UpdateStatus", err)
	}
	return o, nil
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM orders
		GROUP BY status
	`)
	if err != nil {
		return nil, apperr.Persistence("order.Stats", err)
	}
	defer rows.Close()

	stats := newStats()
	for rows.Next() {
		var (
			status Status
			count  int
			sum    int
		)
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return nil, apperr.Persistence("order.Stats", err)
		}
		stats.add(status, count, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("order.Stats", err)
	}
	return stats, nil
}

func newStats() *Stats {
	s := &Stats{ByStatus: make(map[Status]int, len(Statuses))}
	for _, st := range Statuses {
		s.ByStatus[st] = 0
	}
	return s
}

func (s *Stats) add(status Status, count, sum int) {
	s.TotalOrders += count
	s.ByStatus[status] += count
	if status != StatusCancelled {
		s.Revenue += sum
	}
}
