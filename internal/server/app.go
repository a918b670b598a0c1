// Package server wires the backend together: storage, demo data, the auth
// service and the HTTP API, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/server/auth"
	"github.com/barberbook/barberbook/internal/server/config"
	"github.com/barberbook/barberbook/internal/server/httpapi"
	"github.com/barberbook/barberbook/internal/server/repositories/clients"
	"github.com/barberbook/barberbook/internal/server/repositories/users"
	"github.com/barberbook/barberbook/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	return &App{config: cfg, log: log}
}

// Run starts the HTTP server and blocks until ctx is cancelled or a
// SIGINT/SIGTERM arrives, then drains in-flight requests.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, app.config.DBPath)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	defer db.Close()

	userRepo := users.NewSQLiteRepository(db)
	clientRepo := clients.NewSQLiteRepository(db)

	if err := Seed(ctx, db, userRepo, clientRepo, app.log); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	authSvc := auth.NewService(userRepo, []byte(app.config.JWTSecret), app.config.TokenTTL, app.log)
	router := httpapi.NewRouter(authSvc, clientRepo, app.log)

	srv := &http.Server{Addr: app.config.Addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		app.log.Info(ctx, "server started", "addr", app.config.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	app.log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
