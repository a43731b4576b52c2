package user

import (
	"encoding/json"
	"net/http"
	"time"

	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"

	"go.uber.org/zap"
)

// Handler serves the REST side of sign-in: the OAuth callback and logout.
type Handler struct {
	svc          Service
	secureCookie bool
}

func NewHandler(svc Service, secureCookie bool) *Handler {
	return &Handler{svc: svc, secureCookie: secureCookie}
}

func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	token, _, err := h.svc.SignIn(r.Context(), code)
	if err != nil {
		logger.FromCtx(r.Context()).Warn("oauth callback failed", zap.Error(err))
		http.Error(w, "sign-in failed", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, auth.SessionCookie(token, time.Now().Add(auth.TokenTTL), h.secureCookie))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Logout(r.Context())

	http.SetCookie(w, auth.ClearedSessionCookie(h.secureCookie))

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": err == nil})
}
