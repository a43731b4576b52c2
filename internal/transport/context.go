// Package transport carries the HTTP response writer through resolver
// contexts so GraphQL fields can set headers and cookies.
package transport

import (
	"context"
	"net/http"
)

type ctxKey struct{}

var responseWriterKey ctxKey

func WithResponseWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, responseWriterKey, w)
}

func ResponseWriterFrom(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w
}

// SetCookie writes c to the response carried by ctx. It reports false when
// the context has no writer, as with resolvers executed outside a request.
func SetCookie(ctx context.Context, c *http.Cookie) bool {
	w := ResponseWriterFrom(ctx)
	if w == nil {
		return false
	}
	http.SetCookie(w, c)
	return true
}
