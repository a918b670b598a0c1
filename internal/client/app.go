// Package client assembles the terminal application: local storage, the API
// client, the session store and the TUI program.
package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/barberbook/barberbook/internal/client/api"
	"github.com/barberbook/barberbook/internal/client/config"
	"github.com/barberbook/barberbook/internal/client/repositories/tokens"
	"github.com/barberbook/barberbook/internal/client/session"
	"github.com/barberbook/barberbook/internal/client/storage"
	"github.com/barberbook/barberbook/internal/client/tui"
	"github.com/barberbook/barberbook/internal/logging"
)

type App struct {
	config *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{config: cfg}
}

// Run wires the dependencies and blocks inside the TUI event loop until the
// user quits.
func (app *App) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	log, closer, err := logging.NewFileLogger(app.config.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	db, err := storage.Open(ctx, app.config.DBPath)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	defer db.Close()

	tokenRepo := tokens.NewSQLiteRepository(db)
	apiClient := api.New(app.config.ServerURL, tokenRepo, log)
	store := session.NewStore(apiClient, log)

	model := tui.NewAppModel(store, apiClient, log)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	log.Info(ctx, "client started", "server", app.config.ServerURL)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
