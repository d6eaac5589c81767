package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/malliaquatic/clubd/internal/club/http"
	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/internal/club/store"
	"github.com/malliaquatic/clubd/internal/club/store/drivers/memory"
	"github.com/malliaquatic/clubd/internal/club/store/drivers/sqlite"
	"github.com/malliaquatic/clubd/pkg/cryptox"
	"github.com/malliaquatic/clubd/pkg/jwtx"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the club service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	// Services
	events           *service.EventBus
	authService      *service.AuthService
	configService    *service.ConfigService
	raffleService    *service.RaffleService
	userService      *service.UserService
	exportService    *service.ExportService
	assistantService *service.AssistantService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "club-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for PIN and password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Session keys are ephemeral: a restart logs everyone out, which is
	// acceptable for a single-node deployment of this size.
	pub, priv, err := jwtx.NewKeyPair()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.signer = jwtx.NewSigner(priv)
	app.verifier = jwtx.NewVerifier(pub, app.cfg.Issuer)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("club service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down club service...")

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

	app.logger.Info("club service stopped")
	return nil
}

// initDatabase selects the storage driver and applies migrations.
func (app *Application) initDatabase() error {
	switch app.cfg.StoreDriver {
	case "memory":
		app.db = memory.NewStore()
		app.logger.Info("using in-memory store; data is lost on restart")

	default:
		host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(host)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.events = service.NewEventBus()

	app.configService = &service.ConfigService{
		Store:  app.db,
		Events: app.events,
	}

	app.authService = &service.AuthService{
		Store:             app.db,
		Config:            app.configService,
		Events:            app.events,
		Signer:            app.signer,
		Issuer:            app.cfg.Issuer,
		UserTTL:           app.cfg.UserTokenTTL,
		AdminTTL:          app.cfg.AdminTokenTTL,
		AdminPINHash:      app.cfg.AdminPINHash,
		SuperAdminPINHash: app.cfg.SuperAdminPINHash,
	}

	app.raffleService = &service.RaffleService{
		Store:              app.db,
		Config:             app.configService,
		Events:             app.events,
		DepartureRetention: app.cfg.DepartureRetention,
	}

	app.userService = &service.UserService{
		Store:  app.db,
		Events: app.events,
	}

	app.exportService = &service.ExportService{
		Config: app.configService,
		Raffle: app.raffleService,
		Users:  app.userService,
	}

	app.assistantService = &service.AssistantService{
		APIKey: app.cfg.GeminiAPIKey,
		Model:  app.cfg.GeminiModel,
		Config: app.configService,
	}

	if !app.assistantService.Enabled() {
		app.logger.Warn("assistant disabled: GEMINI_API_KEY not set")
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ConfigService = app.configService
	router.RaffleService = app.raffleService
	router.UserService = app.userService
	router.ExportService = app.exportService
	router.AssistantService = app.assistantService
	router.Events = app.events
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
