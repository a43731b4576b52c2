package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/config"
	"uniformshop-be/internal/db"
	"uniformshop-be/internal/graph"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/metrics"
	"uniformshop-be/internal/middleware"
	"uniformshop-be/internal/notify"
	"uniformshop-be/internal/order"
	"uniformshop-be/internal/payment"
	"uniformshop-be/internal/product"
	"uniformshop-be/internal/session"
	"uniformshop-be/internal/storage"
	"uniformshop-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Swapped in tests.
var (
	connectDBFunc   = db.Connect
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := connectDBFunc(cfg)
	if err != nil && !errors.Is(err, db.ErrUnavailable) {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	sessions, closeSessions := newSessionStore(ctx, cfg)
	defer closeSessions()

	handler, err := newServer(ctx, cfg, database, sessions)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("🚀 server running", zap.String("addr", srv.Addr))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSessionStore uses Redis when configured. An unreachable Redis is not
// fatal; logout then only clears the cookie.
func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func()) {
	if cfg.RedisAddr == "" {
		return session.NewNoopStore(), func() {}
	}

	client, err := session.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.L().Warn("session store unavailable, revocation disabled", zap.Error(err))
		return session.NewNoopStore(), func() {}
	}
	return session.NewRedisStore(client), func() { _ = client.Close() }
}

// newServer wires every component. database may be nil, in which case the
// unavailable repositories are used.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB, sessions session.Store) (http.Handler, error) {
	var (
		productRepo product.Repository
		orderRepo   order.Repository
		paymentRepo payment.Repository
		userRepo    user.Repository
	)
	if database != nil {
		productRepo = product.NewRepository(database)
		orderRepo = order.NewRepository(database)
		paymentRepo = payment.NewRepository(database)
		userRepo = user.NewRepository(database)
	} else {
		productRepo = product.NewUnavailableRepository()
		orderRepo = order.NewUnavailableRepository()
		paymentRepo = payment.NewUnavailableRepository()
		userRepo = user.NewUnavailableRepository()
	}

	if cfg.JWTSecret == "" {
		logger.L().Warn("JWT_SECRET is empty, sessions cannot be issued")
	}

	disk, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := notify.NewWebhookSender(cfg.DiscordWebhookURL)
	signer := auth.NewSigner(cfg.JWTSecret)
	secureCookie := cfg.AppEnv == "production"

	productSvc := product.NewService(productRepo)
	orderSvc := order.NewService(orderRepo, productSvc, notifier)
	paymentSvc := payment.NewService(paymentRepo, orderSvc, disk, notifier, cfg.MaxUploadBytes)
	userSvc := user.NewService(userRepo, user.NewHTTPIdentityProvider(cfg.OAuthServerURL), signer, sessions, cfg.OwnerOpenID)

	schema, err := graph.NewSchema(&graph.Resolver{
		ProductSvc: productSvc,
		OrderSvc:   orderSvc,
		PaymentSvc: paymentSvc,
		UserSvc:    userSvc,

		SecureCookie: secureCookie,
	})
	if err != nil {
		return nil, err
	}

	limiter := middleware.NewRateLimiter()
	go limiter.Run(ctx)

	userHandler := user.NewHandler(userSvc, secureCookie)

	router := setupRouter(routes{
		graphql:    graph.Handler(schema),
		upload:     payment.NewHandler(paymentSvc, cfg.MaxUploadBytes).Upload,
		callback:   userHandler.Callback,
		logout:     userHandler.Logout,
		storage:    storage.Handler(paymentSvc),
		auth:       middleware.Auth(signer, sessions),
		limiter:    limiter,
		corsOrigin: cfg.CORSAllowedOrigin,
	})

	return otelhttp.NewHandler(router, "uniformshop-be"), nil
}

type routes struct {
	graphql    http.Handler
	upload     http.HandlerFunc
	callback   http.HandlerFunc
	logout     http.HandlerFunc
	storage    http.Handler
	auth       func(http.Handler) http.Handler
	limiter    *middleware.RateLimiter
	corsOrigin string
}

func setupRouter(rt routes) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS(rt.corsOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/storage/*", rt.storage.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(rt.auth)
		r.Use(rt.limiter.Middleware)

		r.Handle("/query", rt.graphql)
		r.Post("/payment-slips", rt.upload)
		r.Get("/auth/callback", rt.callback)
		r.Post("/auth/logout", rt.logout)
	})

	return r
}
