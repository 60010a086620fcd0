package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/devconnector/internal/devconnector/http"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store/drivers/postgres"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store/drivers/sqlite"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/jwtx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the devconnector service and everything it depends on.
type Application struct {
	cfg       Config
	logger    *slog.Logger
	logCloser io.Closer

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier
	metrics  *httpx.Metrics

	authService    *service.AuthService
	profileService *service.ProfileService
	postService    *service.PostService
	githubService  *service.GitHubService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	logger, closer := slogx.New(slogx.Config{
		Service: "devconnector",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	app := &Application{
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
	}

	if err := app.initDatabase(); err != nil {
		_ = closer.Close()
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		_ = closer.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mostly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("devconnector starting",
		"port", app.cfg.Port,
		"store", app.cfg.StoreDriver,
		"version", BuildVersion,
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
	app.logger.Info("shutting down devconnector...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("devconnector stopped")
	return app.logCloser.Close()
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.StoreDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		dsn := fmt.Sprintf(
			"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
			app.cfg.DatabaseFile,
		)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initTokens builds the HS256 signer and verifier from the configured secret.
func (app *Application) initTokens() error {
	secret := []byte(app.cfg.JWTSecret)

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
		TTL:    app.cfg.TokenTTL,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.githubService = service.NewGitHubService(app.cfg.GitHubAPIURL, app.cfg.GitHubToken)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	app.metrics = httpx.NewMetrics("devconnector")

	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.RateLimits,
		app.metrics,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.PostService = app.postService
	router.GitHubService = app.githubService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
