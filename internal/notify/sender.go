// Package notify posts best-effort order notifications to a chat webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/metrics"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Sender delivers a message once. It reports success and never returns an
// error; callers only log the outcome.
type Sender interface {
	Send(ctx context.Context, msg Message) bool
}

type webhookSender struct {
	url        string
	httpClient *http.Client
}

func NewWebhookSender(url string) Sender {
	if url == "" {
		logger.L().Warn("Discord webhook URL is empty, notifications are disabled")
	}

	return &webhookSender{
		url: url,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (s *webhookSender) Send(ctx context.Context, msg Message) bool {
	log := logger.FromCtx(ctx).With(zap.String("layer", "notify"))

	if s.url == "" {
		log.Warn("webhook URL not configured, skipping notification")
		metrics.Notifications.WithLabelValues("skipped").Inc()
		return false
	}

	body, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to encode notification", zap.Error(err))
		metrics.Notifications.WithLabelValues("failed").Inc()
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to build notification request", zap.Error(err))
		metrics.Notifications.WithLabelValues("failed").Inc()
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("failed to send notification", zap.Error(err))
		metrics.Notifications.WithLabelValues("failed").Inc()
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("webhook rejected notification",
			zap.Int("status", resp.StatusCode),
			zap.String("status_text", resp.Status),
		)
		metrics.Notifications.WithLabelValues("failed").Inc()
		return false
	}

	log.Info("notification sent")
	metrics.Notifications.WithLabelValues("sent").Inc()
	return true
}
