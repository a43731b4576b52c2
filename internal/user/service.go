package user

import (
	"context"
	"errors"
	"time"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/session"

	"go.uber.org/zap"
)

type Service interface {
	SignIn(ctx context.Context, code string) (string, *User, error)
	CurrentUser(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error
}

type service struct {
	repo        Repository
	identity    IdentityProvider
	signer      *auth.Signer
	sessions    session.Store
	ownerOpenID string
	now         func() time.Time
}

func NewService(
	repo Repository,
	identity IdentityProvider,
	signer *auth.Signer,
	sessions session.Store,
	ownerOpenID string,
) Service {
	return &service{
		repo:        repo,
		identity:    identity,
		signer:      signer,
		sessions:    sessions,
		ownerOpenID: ownerOpenID,
		now:         time.Now,
	}
}

func (s *service) SignIn(ctx context.Context, code string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SignIn"),
	)

	id, err := s.identity.Exchange(ctx, code)
	if err != nil {
		log.Warn("identity exchange failed", zap.Error(err))
		if errors.Is(err, ErrInvalidAuthCode) {
			return "", nil, apperr.Authorization("user.SignIn", "invalid authorization code")
		}
		return "", nil, err
	}

	u, err := s.repo.Upsert(ctx, UpsertParams{
		Identity:     *id,
		Role:         RoleFor(id.OpenID, s.ownerOpenID),
		LastSignedIn: s.now(),
	})
	if err != nil {
		log.Error("failed to upsert user", zap.String("open_id", id.OpenID), zap.Error(err))
		return "", nil, err
	}

	token, _, err := s.signer.Issue(u.Actor())
	if err != nil {
		log.Error("failed to issue session token", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("user signed in",
		zap.Int("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return token, u, nil
}

func (s *service) CurrentUser(ctx context.Context) (*User, error) {
	actor, ok := auth.ActorFrom(ctx)
	if !ok {
		return nil, nil
	}

	u, err := s.repo.GetByID(ctx, actor.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	return u, err
}

// Logout revokes the current token. Without a session there is nothing to revoke.
func (s *service) Logout(ctx context.Context) error {
	claims, ok := auth.SessionFrom(ctx)
	if !ok {
		return nil
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := s.sessions.Revoke(ctx, claims.ID, expiresAt); err != nil {
		logger.FromCtx(ctx).Error("logout failed", zap.Error(err))
		return err
	}
	return nil
}
