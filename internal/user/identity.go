package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"uniformshop-be/internal/logger"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// IdentityProvider exchanges an OAuth callback code for the caller's identity.
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*Identity, error)
}

var ErrIdentityProviderUnset = errors.New("OAUTH_SERVER_URL is not set")

type httpIdentityProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPIdentityProvider(baseURL string) IdentityProvider {
	if baseURL == "" {
		logger.L().Warn("OAuth server URL is empty, sign-in is disabled")
	}

	return &httpIdentityProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (p *httpIdentityProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	if p.baseURL == "" {
		return nil, ErrIdentityProviderUnset
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrInvalidAuthCode
	}

	log := logger.FromCtx(ctx).With(zap.String("layer", "identity"))

	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Error("identity exchange request failed", zap.Error(err))
		return nil, fmt.Errorf("identity exchange: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidAuthCode
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("identity provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil, fmt.Errorf("identity exchange: status %d", resp.StatusCode)
	}

	var id Identity
	if err := json.Unmarshal(respBody, &id); err != nil {
		return nil, fmt.Errorf("identity exchange: decode: %w", err)
	}
	if id.OpenID == "" {
		return nil, ErrMissingOpenID
	}
	return &id, nil
}
