package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hrcalc/internal/domain/attendance"
	"hrcalc/internal/domain/auth"
	"hrcalc/internal/domain/payroll"
	"hrcalc/internal/platform/config"
	"hrcalc/internal/platform/metrics"
	"hrcalc/internal/transport/http/api"
	attendancehandler "hrcalc/internal/transport/http/handlers/attendance"
	payrollhandler "hrcalc/internal/transport/http/handlers/payroll"
	"hrcalc/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Router  http.Handler
	Metrics *metrics.Collector
	Logger  *zap.Logger
}

// New assembles the router. Permission checks are only enforced when a JWT
// secret is configured; /healthz is always public.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	lateness := attendance.NewCalculator(cfg.DefaultShiftStart, attendance.WithLocation(loc))
	calc := payroll.NewCalculator(lateness)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}
	var authz *middleware.Authorizer
	if cfg.AuthEnabled() {
		authz = middleware.NewAuthorizer(auth.StaticPermissions{})
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, middleware.WithLogger(logger)))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if collector != nil {
		router.With(authz.Require(auth.PermMetricsRead)).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, r, collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		attendancehandler.NewHandler(lateness, collector, authz).RegisterRoutes(r)
		payrollhandler.NewHandler(calc, collector, authz, cfg.Currency).RegisterRoutes(r)
	})

	return &App{Config: cfg, Router: router, Metrics: collector, Logger: logger}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.Config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Config.Addr, err)
	}
	return a.Serve(ctx, listener)
}

func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{Handler: a.Router}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("hrcalc server listening", zap.String("addr", listener.Addr().String()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		a.Logger.Info("hrcalc server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
