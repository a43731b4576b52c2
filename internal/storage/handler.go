package storage

import (
	"context"
	"errors"
	"net/http"
	"path"

	"uniformshop-be/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Opener fetches stored bytes by key.
type Opener interface {
	Open(ctx context.Context, key string) ([]byte, error)
}

// Handler serves objects under a chi wildcard route such as /storage/*.
func Handler(o Opener) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		if key == "" {
			http.NotFound(w, r)
			return
		}

		data, err := o.Open(r.Context(), key)
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidKey):
			http.NotFound(w, r)
			return
		case err != nil:
			logger.FromCtx(r.Context()).Error("failed to open stored object",
				zap.String("key", key),
				zap.Error(err),
			)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType(key, data))
		w.Header().Set("Cache-Control", "private, max-age=3600")
		_, _ = w.Write(data)
	})
}

func contentType(key string, data []byte) string {
	switch path.Ext(key) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	}
	return http.DetectContentType(data)
}
