package auth

import (
	"context"

	"uniformshop-be/internal/apperr"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the authenticated identity an operation runs under.
type Actor struct {
	UserID int
	OpenID string
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanAccess reports whether the actor owns the resource or is an admin.
func (a Actor) CanAccess(ownerID int) bool {
	return a.IsAdmin() || a.UserID == ownerID
}

type ctxKey string

const (
	actorKey   ctxKey = "actor"
	sessionKey ctxKey = "session"
)

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	if !ok || a.UserID == 0 {
		return Actor{}, false
	}
	return a, true
}

func WithSession(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, sessionKey, c)
}

// SessionFrom returns the verified token claims of the current request.
func SessionFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(sessionKey).(*Claims)
	return c, ok && c != nil
}

// Require returns the acting user or an authorization error for op.
func Require(ctx context.Context, op string) (Actor, error) {
	a, ok := ActorFrom(ctx)
	if !ok {
		return Actor{}, apperr.Authorization(op, "unauthorized")
	}
	return a, nil
}

func RequireAdmin(ctx context.Context, op string) (Actor, error) {
	a, err := Require(ctx, op)
	if err != nil {
		return Actor{}, err
	}
	if !a.IsAdmin() {
		return Actor{}, apperr.Authorization(op, "forbidden")
	}
	return a, nil
}
