package client

import (
	"context"
	"errors"

	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/internal/tui"
	"github.com/securevault/securevault/internal/workers"
	"github.com/securevault/securevault/models"
)

// App ties the service layer, background workers, and the TUI together for
// one client run.
type App struct {
	services *service.Services
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, background *workers.Workers, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		ui:       ui,
		workers:  background,
		logger:   log,
	}, nil
}

// Run restores any persisted session, starts the background workers, and
// hands control to the TUI until the user quits.
func (a *App) Run() error {
	// Every service and repository call below resolves its logger from the
	// context, so attach ours to the root.
	ctx := a.logger.WithContext(context.Background())

	// A failed restore is not fatal: the machine stays unauthenticated and
	// the TUI opens on the sign-in menu.
	if session, err := a.services.Auth.RestoreSession(ctx); err != nil {
		a.logger.Info().Err(err).Msg("no session restored")
	} else if session.State() == models.StateActive {
		if err = a.services.Vault.Load(ctx, session.UserID); err != nil {
			a.logger.Warn().Err(err).Msg("failed to load vault snapshot")
		}
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
