package middleware

import (
	"net/http"

	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/session"

	"go.uber.org/zap"
)

// Auth resolves the acting user from the session cookie or bearer token.
// Requests with a missing, invalid or revoked token continue anonymously;
// the services decide whether that is acceptable.
func Auth(signer *auth.Signer, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			log := logger.FromCtx(ctx)

			claims, err := signer.Parse(tokenStr)
			if err != nil {
				log.Debug("ignoring invalid session token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			revoked, err := sessions.IsRevoked(ctx, claims.ID)
			if err != nil {
				log.Warn("session revocation check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if revoked {
				log.Debug("ignoring revoked session token", zap.String("jti", claims.ID))
				next.ServeHTTP(w, r)
				return
			}

			ctx = auth.WithActor(ctx, claims.Actor())
			ctx = auth.WithSession(ctx, claims)
			ctx = logger.WithUserID(ctx, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
