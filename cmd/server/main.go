package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"mealshare/internal/config"
	"mealshare/internal/db"
	"mealshare/internal/db/mock"
	applog "mealshare/internal/log"
	"mealshare/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	needsSeedFunc       = db.NeedsSeed
	seedDatabaseFunc    = mock.Seed
	closeDatabaseFunc   = db.Close
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}
	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to prepare database", "error", err)
		return 1
	}
	defer func() {
		if err := closeDatabaseFunc(database); err != nil {
			applog.Error(ctx, "failed to close database", "error", err)
		}
	}()

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database: database,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
		return 0
	case sig := <-sigCh:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	}

	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server exited with an error", "error", err)
		return 1
	}
	applog.Info(ctx, "server stopped")
	return 0
}

// openDatabase returns the seeded in-memory store when the mock is enabled.
// Otherwise it opens and migrates the configured store, seeding it when the
// sqlite file is being created for the first time.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		return newMockDatabaseFunc(ctx)
	}

	seed := needsSeedFunc(cfg)
	database, err := configureDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if seed {
		applog.Info(ctx, "seeding new database")
		if err := seedDatabaseFunc(ctx, database); err != nil {
			if closeErr := closeDatabaseFunc(database); closeErr != nil {
				applog.Error(ctx, "failed to close database", "error", closeErr)
			}
			return nil, err
		}
	}
	return database, nil
}
