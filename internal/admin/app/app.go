package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/http"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the admin API together.
type Application struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	db       store.Store
	registry *store.Registry

	authService      *service.AuthService
	recordService    *service.RecordService
	dashboardService *service.DashboardService
	monitor          *service.StoreMonitor
	verifier         jwtx.Verifier

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "admin-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed API, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.monitor.Start()

	app.logger.Info("admin api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down admin api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.monitor.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("admin api stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg, app.logger)
	if err != nil {
		return err
	}
	app.db = db
	app.registry = store.NewRegistry(app.db, app.cfg.Collections.Names())
	app.metrics.SetStoreReady(app.db.Ready())
	return nil
}

func (app *Application) initServices() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		app.logger.Warn("JWT_SECRET not set, using an insecure development secret")
		secret = devJWTSecret
	}
	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	users, err := app.registry.Accessor(app.cfg.Collections.Users)
	if err != nil {
		return err
	}

	if app.cfg.AllowPlaintextPasswords {
		app.logger.Warn("legacy plaintext password login is enabled")
	}

	app.authService = &service.AuthService{
		Users:    users,
		Signer:   signer,
		Issuer:   app.cfg.JWTIssuer,
		TokenTTL: app.cfg.TokenTTL,
		Admin: service.FallbackAdmin{
			Email:    app.cfg.AdminEmail,
			Password: app.cfg.AdminPassword,
			Name:     app.cfg.AdminName,
		},
		AllowLegacyPlaintext: app.cfg.AllowPlaintextPasswords,
		Metrics:              app.metrics,
	}
	app.recordService = &service.RecordService{Registry: app.registry, Metrics: app.metrics}
	app.dashboardService = &service.DashboardService{Dashboards: app.registry.Dashboards()}
	app.monitor = service.NewStoreMonitor(app.db, app.logger, app.metrics, app.cfg.StorePingInterval)

	app.verifier = jwtx.NewVerifierHS256([]byte(secret), app.cfg.JWTIssuer)
	return nil
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.registry,
		app.cfg.Collections,
		app.metrics,
		app.cfg.CORSOriginList(),
		app.logger,
	)
	app.router.AuthService = app.authService
	app.router.RecordService = app.recordService
	app.router.DashboardService = app.dashboardService
	app.router.AdminRoles = app.cfg.AdminRoleList()
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
