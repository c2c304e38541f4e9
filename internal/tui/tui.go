package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/clipboard"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	clipboard clipboard.Clipboard
}

func New(services *service.Services, clip clipboard.Clipboard, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, clipboard: clip}, nil
}

// Run drives the whole client UI in a single Bubble Tea program. The start
// page depends on whether a persisted session survived restart.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":         NewMenuModel(),
		"login":        NewLoginModel(ctx, t.services.Auth),
		"register":     NewRegisterModel(ctx, t.services.Auth),
		"master-setup": NewMasterSetupModel(ctx, t.services.Auth),
		"twofactor":    NewTwoFactorModel(ctx, t.services.Auth),
		"vault":        NewVaultListModel(ctx, t.services.Auth, t.services.Vault, t.services.Breach, t.clipboard),
		"add":          NewCredentialFormModel(ctx, t.services.Auth, t.services.Vault),
		"generator":    NewGeneratorModel(t.clipboard),
	}

	startPage := "menu"
	if t.services.Auth.State() != models.StateUnauthenticated {
		startPage = pageForState(t.services.Auth.State())
	}

	root := NewRootModel(pages, startPage, t.services.Auth)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
