package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Upsert(ctx context.Context, p UpsertParams) (*User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo *MockRepository, idp *MockIdentityProvider, sessions *MockSessionStore) *service {
	return NewService(repo, idp, auth.NewSigner("testsecret"), sessions, "owner-open-id").(*service)
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner becomes admin", func(t *testing.T) {
		repo, idp := new(MockRepository), new(MockIdentityProvider)
		svc := newTestService(repo, idp, new(MockSessionStore))

		idp.On("Exchange", ctx, "code-1").Return(&Identity{OpenID: "owner-open-id"}, nil)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p UpsertParams) bool {
			return p.OpenID == "owner-open-id" && p.Role == auth.RoleAdmin && !p.LastSignedIn.IsZero()
		})).Return(&User{ID: 1, OpenID: "owner-open-id", Role: auth.RoleAdmin}, nil)

		token, u, err := svc.SignIn(ctx, "code-1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, auth.RoleAdmin, u.Role)

		claims, err := auth.NewSigner("testsecret").Parse(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
		repo.AssertExpectations(t)
	})

	t.Run("Regular user", func(t *testing.T) {
		repo, idp := new(MockRepository), new(MockIdentityProvider)
		svc := newTestService(repo, idp, new(MockSessionStore))

		idp.On("Exchange", ctx, "code-2").Return(&Identity{OpenID: "student-parent"}, nil)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p UpsertParams) bool {
			return p.Role == auth.RoleUser
		})).Return(&User{ID: 2, OpenID: "student-parent", Role: auth.RoleUser}, nil)

		_, u, err := svc.SignIn(ctx, "code-2")
		require.NoError(t, err)
		assert.Equal(t, 2, u.ID)
	})

	t.Run("Invalid code", func(t *testing.T) {
		repo, idp := new(MockRepository), new(MockIdentityProvider)
		svc := newTestService(repo, idp, new(MockSessionStore))

		idp.On("Exchange", ctx, "bad").Return(nil, ErrInvalidAuthCode)

		_, _, err := svc.SignIn(ctx, "bad")
		assert.ErrorIs(t, err, apperr.ErrAuthorization)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Upsert fails", func(t *testing.T) {
		repo, idp := new(MockRepository), new(MockIdentityProvider)
		svc := newTestService(repo, idp, new(MockSessionStore))

		idp.On("Exchange", ctx, "code-3").Return(&Identity{OpenID: "x"}, nil)
		repo.On("Upsert", ctx, mock.Anything).Return(nil, apperr.Persistence("user.Upsert", errors.New("db down")))

		_, _, err := svc.SignIn(ctx, "code-3")
		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})

	t.Run("Missing secret", func(t *testing.T) {
		repo, idp := new(MockRepository), new(MockIdentityProvider)
		svc := NewService(repo, idp, auth.NewSigner(""), new(MockSessionStore), "")

		idp.On("Exchange", ctx, "code-4").Return(&Identity{OpenID: "x"}, nil)
		repo.On("Upsert", ctx, mock.Anything).Return(&User{ID: 3, OpenID: "x", Role: auth.RoleUser}, nil)

		_, _, err := svc.SignIn(ctx, "code-4")
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})
}

func TestService_CurrentUser(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockIdentityProvider), new(MockSessionStore))

		u, err := svc.CurrentUser(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, u)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Authenticated", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockIdentityProvider), new(MockSessionStore))
		ctx := auth.WithActor(context.Background(), auth.Actor{UserID: 5, Role: auth.RoleUser})

		repo.On("GetByID", ctx, 5).Return(&User{ID: 5}, nil)

		u, err := svc.CurrentUser(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 5, u.ID)
	})

	t.Run("Deleted row", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockIdentityProvider), new(MockSessionStore))
		ctx := auth.WithActor(context.Background(), auth.Actor{UserID: 6})

		repo.On("GetByID", ctx, 6).Return(nil, ErrUserNotFound)

		u, err := svc.CurrentUser(ctx)
		assert.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestService_Logout(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	claims := &auth.Claims{
		UserID:           5,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-5", ExpiresAt: jwt.NewNumericDate(exp)},
	}

	t.Run("Revokes current token", func(t *testing.T) {
		sessions := new(MockSessionStore)
		svc := newTestService(new(MockRepository), new(MockIdentityProvider), sessions)
		ctx := auth.WithSession(context.Background(), claims)

		sessions.On("Revoke", ctx, "jti-5", exp).Return(nil)

		assert.NoError(t, svc.Logout(ctx))
		sessions.AssertExpectations(t)
	})

	t.Run("No session", func(t *testing.T) {
		sessions := new(MockSessionStore)
		svc := newTestService(new(MockRepository), new(MockIdentityProvider), sessions)

		assert.NoError(t, svc.Logout(context.Background()))
		sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store fails", func(t *testing.T) {
		sessions := new(MockSessionStore)
		svc := newTestService(new(MockRepository), new(MockIdentityProvider), sessions)
		ctx := auth.WithSession(context.Background(), claims)

		sessions.On("Revoke", ctx, "jti-5", exp).Return(errors.New("redis down"))

		assert.Error(t, svc.Logout(ctx))
	})
}
