package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_IssueAndParse(t *testing.T) {
	s := NewSigner("test-secret")
	actor := Actor{UserID: 42, OpenID: "open-42", Role: RoleAdmin}

	token, claims, err := s.Issue(actor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)

	parsed, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, actor, parsed.Actor())
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestSigner_Parse_Rejects(t *testing.T) {
	s := NewSigner("test-secret")

	t.Run("WrongSecret", func(t *testing.T) {
		token, _, err := NewSigner("other").Issue(Actor{UserID: 1, Role: RoleUser})
		require.NoError(t, err)

		_, err = s.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		old := NewSigner("test-secret")
		old.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }
		token, _, err := old.Issue(Actor{UserID: 1, Role: RoleUser})
		require.NoError(t, err)

		_, err = s.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := s.Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		_, _, err := NewSigner("").Issue(Actor{UserID: 1})
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = NewSigner("").Parse("x")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("Bearer", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", ExtractAccessToken(r))
	})

	t.Run("None", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractAccessToken(r))
	})
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFrom(context.Background())
	assert.False(t, ok)

	ctx := WithActor(context.Background(), Actor{UserID: 3, Role: RoleUser})
	a, ok := ActorFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, 3, a.UserID)
	assert.False(t, a.IsAdmin())
	assert.True(t, a.CanAccess(3))
	assert.False(t, a.CanAccess(4))

	admin := Actor{UserID: 1, Role: RoleAdmin}
	assert.True(t, admin.CanAccess(99))

	_, ok = ActorFrom(WithActor(context.Background(), Actor{}))
	assert.False(t, ok)
}
