package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "open_id", "name", "email", "login_method", "role", "created_at", "updated_at", "last_signed_in"}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()
	name := "Somchai"

	params := UpsertParams{
		Identity:     Identity{OpenID: "open-1", Name: &name},
		Role:         auth.RoleUser,
		LastSignedIn: now,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(open_id, name, email, login_method, role, last_signed_in\).*ON CONFLICT \(open_id\) DO UPDATE`).
			WithArgs("open-1", name, nil, nil, "user", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(1, "open-1", name, nil, nil, "user", now, now, now))

		u, err := repo.Upsert(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, auth.RoleUser, u.Role)
		require.NotNil(t, u.Name)
		assert.Equal(t, name, *u.Name)
		assert.Nil(t, u.Email)
	})

	t.Run("MissingOpenID", func(t *testing.T) {
		_, err := repo.Upsert(ctx, UpsertParams{})
		assert.ErrorIs(t, err, ErrMissingOpenID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Upsert(ctx, params)
		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow(7, "owner", nil, "o@example.com", "google", "admin", now, now, now))

		u, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, u.Role)
		assert.Equal(t, "o@example.com", *u.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
			WithArgs(8).
			WillReturnError(sql.ErrNoRows)

		u, err := repo.GetByID(ctx, 8)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})
}

func TestUnavailableRepository(t *testing.T) {
	repo := NewUnavailableRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, UpsertParams{Identity: Identity{OpenID: "x"}})
	assert.ErrorIs(t, err, apperr.ErrPersistence)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, auth.RoleAdmin, RoleFor("owner", "owner"))
	assert.Equal(t, auth.RoleUser, RoleFor("someone", "owner"))
	assert.Equal(t, auth.RoleUser, RoleFor("", ""))
}
