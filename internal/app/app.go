package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkden/internal/config"
	"linkden/internal/httpserver"
	"linkden/internal/httpserver/deps"
	"linkden/internal/logger"
	"linkden/internal/store/sqlite"
	"linkden/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	db     *sql.DB
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the store early - fail fast if the database is unusable
	loggerClient.Infof("Opening bookmark database at %s", cfg.DBPath)
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		loggerClient.Fatalf("failed to open database %s: %v", cfg.DBPath, err)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:     loggerClient,
		StartTime:  time.Now(),
		Version:    version.Version,
		Commit:     version.Commit,
		BuildDate:  version.BuildDate,
		GoVersion:  version.GoVersion,
		TimeNow:    time.Now,
		Store:      sqlite.NewStore(db),
		APIToken:   cfg.APIToken,
		Production: cfg.Production(),
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		db:     db,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkden %s on %s (env=%s)",
		version.Version, a.cfg.ListenAddr, a.cfg.Env)
	a.logger.Infof("linkden %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.logger.Errorf("HTTP server shutdown error: %v", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Errorf("database close error: %v", err)
	}
	_ = a.logger.Sync()

	a.logger.Info("Shutdown complete")
	return nil
}
