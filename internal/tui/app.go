package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, refusing pages the session state forbids
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string
	auth    service.AuthSessionService

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, auth service.AuthSessionService) RootModel {
	return RootModel{
		pages:   pages,
		current: startPage,
		auth:    auth,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	// Cross-page navigation gated by the session state.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists || !pageAllowed(nav.Page, r.auth) {
			return r, nil
		}

		r.current = nav.Page

		if nav.Payload != nil {
			payload := nav.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, next.Init()
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("SECUREVAULT", "", "")
	}
	return page.View()
}

// pageAllowed is the routing gate: setup pages are only reachable from their
// setup states and vault pages only once the session is active. Authenticator
// enrollment is reachable both when the backend mandates it and as an
// optional action from the vault while the account is not yet enrolled.
func pageAllowed(page string, auth service.AuthSessionService) bool {
	state := auth.State()
	switch page {
	case "menu", "login", "register":
		return state == models.StateUnauthenticated
	case "master-setup":
		return state == models.StateFirstLogin
	case "twofactor":
		session, ok := auth.Current()
		if !ok || session.HasTwoFactor {
			return false
		}
		return state == models.StateNeedsTwoFactor || state == models.StateActive
	case "vault", "add", "generator":
		return state == models.StateActive
	default:
		return false
	}
}

// pageForState resolves the landing page after a successful authentication
// or setup step.
func pageForState(state models.SessionState) string {
	switch state {
	case models.StateFirstLogin:
		return "master-setup"
	case models.StateNeedsTwoFactor:
		return "twofactor"
	case models.StateActive:
		return "vault"
	default:
		return "menu"
	}
}
