package user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniformshop-be/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) SignIn(ctx context.Context, code string) (string, *User, error) {
	args := m.Called(ctx, code)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*User), args.Error(2)
}

func (m *MockService) CurrentUser(ctx context.Context) (*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandler_Callback(t *testing.T) {
	t.Run("Sets cookie and redirects", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, false)

		svc.On("SignIn", mock.Anything, "abc").Return("signed-token", &User{ID: 1}, nil)

		w := httptest.NewRecorder()
		h.Callback(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Missing code", func(t *testing.T) {
		h := NewHandler(new(MockService), false)

		w := httptest.NewRecorder()
		h.Callback(w, httptest.NewRequest(http.MethodGet, "/auth/callback", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Sign-in fails", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, false)

		svc.On("SignIn", mock.Anything, "bad").Return("", nil, errors.New("nope"))

		w := httptest.NewRecorder()
		h.Callback(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=bad", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("Success clears cookie", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, true)

		svc.On("Logout", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "", cookies[0].Value)
		assert.True(t, cookies[0].MaxAge < 0)
	})

	t.Run("Revocation fails", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, false)

		svc.On("Logout", mock.Anything).Return(errors.New("redis down"))

		w := httptest.NewRecorder()
		h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false}`, w.Body.String())
	})
}
