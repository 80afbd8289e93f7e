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

	goredis "github.com/redis/go-redis/v9"

	httpapi "github.com/tech2saini/portfolio/internal/portfolio/http"
	"github.com/tech2saini/portfolio/internal/portfolio/service"
	redissessions "github.com/tech2saini/portfolio/internal/portfolio/sessionstore/redis"
	"github.com/tech2saini/portfolio/internal/portfolio/store"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/memory"
	"github.com/tech2saini/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/tech2saini/portfolio/pkg/mailx"
	"github.com/tech2saini/portfolio/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the portfolio service together: store, session backend,
// services, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          store.Store
	sessions    store.Sessions
	redisClient *goredis.Client

	sessionManager    *service.SessionManager
	authService       *service.AuthService
	resetService      *service.PasswordResetService
	contentService    *service.ContentService
	contactService    *service.ContactService
	newsletterService *service.NewsletterService
	housekeeping      *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portfolio",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}
	if err := app.initSessions(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeeping.Start()

	app.logger.Info("portfolio service starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown drains in-flight requests and releases resources.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portfolio service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeeping.Stop()

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portfolio service stopped")
	return nil
}

// initStore opens the configured storage driver and applies migrations. The
// driver is chosen explicitly; there is no connectivity probing.
func (app *Application) initStore() error {
	switch app.cfg.StorageDriver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.db = db
		app.logger.Info("database migrations applied successfully")
	case "memory":
		app.db = memory.NewStore()
		app.logger.Warn("using in-memory storage; data will not survive restarts")
	default:
		return fmt.Errorf("unknown storage driver %q", app.cfg.StorageDriver)
	}
	return nil
}

// initSessions selects the session backend. The SQL/memory store carries
// sessions by default; "redis" moves them to a Redis instance with TTL
// expiry.
func (app *Application) initSessions() error {
	switch app.cfg.SessionStore {
	case "store", "":
		app.sessions = app.db.Sessions()
	case "redis":
		client := goredis.NewClient(&goredis.Options{Addr: app.cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", app.cfg.RedisAddr, err)
		}
		app.redisClient = client
		app.sessions = redissessions.NewSessions(client)
		app.logger.Info("sessions backed by redis", "addr", app.cfg.RedisAddr)
	default:
		return fmt.Errorf("unknown session store %q", app.cfg.SessionStore)
	}
	return nil
}

func (app *Application) initServices() {
	app.sessionManager = &service.SessionManager{
		Sessions: app.sessions,
		TTL:      app.cfg.SessionTTL,
	}

	twoFactor := &service.TwoFactorService{Issuer: app.cfg.TOTPIssuer}

	app.authService = &service.AuthService{
		Store:     app.db,
		Sessions:  app.sessionManager,
		TwoFactor: twoFactor,
	}

	var mailer mailx.Mailer
	if app.cfg.SMTPAddr != "" {
		mailer = mailx.NewSMTPMailer(mailx.SMTPConfig{
			Addr:     app.cfg.SMTPAddr,
			From:     app.cfg.SMTPFrom,
			Username: app.cfg.SMTPUser,
			Password: app.cfg.SMTPPass,
		})
	} else {
		mailer = &mailx.LogMailer{Logger: app.logger}
		app.logger.Info("no SMTP configured; reset emails go to the log")
	}

	app.resetService = &service.PasswordResetService{
		Store:    app.db,
		Sessions: app.sessionManager,
		Mailer:   mailer,
		Logger:   app.logger,
		TokenTTL: app.cfg.ResetTokenTTL,
		BaseURL:  app.cfg.PublicBaseURL,
	}

	app.contentService = &service.ContentService{Store: app.db}
	app.contactService = &service.ContactService{Store: app.db}
	app.newsletterService = &service.NewsletterService{Store: app.db}

	app.housekeeping = service.NewHousekeepingService(
		app.sessions,
		app.db.PasswordResets(),
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.cfg.Env == "prod",
		app.db,
		app.logger,
	)

	router.SessionManager = app.sessionManager
	router.AuthService = app.authService
	router.ResetService = app.resetService
	router.ContentService = app.contentService
	router.ContactService = app.contactService
	router.NewsletterService = app.newsletterService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
