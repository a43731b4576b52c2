package user

import (
	"context"
	"database/sql"
	"errors"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, p UpsertParams) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod,
		&u.Role, &u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert inserts the user or refreshes its profile. An existing admin keeps
// the role; the owner is promoted on every sign-in.
func (r *repository) Upsert(ctx context.Context, p UpsertParams) (*User, error) {
	if p.OpenID == "" {
		return nil, ErrMissingOpenID
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (open_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			login_method = EXCLUDED.login_method,
			role = CASE WHEN EXCLUDED.role = 'admin' THEN EXCLUDED.role ELSE users.role END,
			last_signed_in = EXCLUDED.last_signed_in,
			updated_at = NOW()
		RETURNING `+userColumns,
		p.OpenID, p.Name, p.Email, p.LoginMethod, p.Role, p.LastSignedIn,
	)

	u, err := scanUser(row)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to upsert user",
			zap.String("open_id", p.OpenID),
			zap.Error(err),
		)
		return nil, apperr.Persistence("user.Upsert", err)
	}
	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanOne(row, "user.GetByID")
}

func (r *repository) scanOne(row *sql.Row, op string) (*User, error) {
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return u, nil
}
