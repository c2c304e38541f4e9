package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/clipboard"
	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/models"
)

const passwordMask = "••••••••"

// VaultListModel is the main credential list: incremental search, visibility
// toggling, clipboard copy, deletion, and entry points to the add form and
// the password generator.
type VaultListModel struct {
	ctx       context.Context
	auth      service.AuthSessionService
	vault     service.VaultService
	breach    service.BreachService
	clipboard clipboard.Clipboard

	search    textinput.Model
	searching bool
	idx       int
	items     []models.Credential
	status    string
	errMsg    string
}

func NewVaultListModel(ctx context.Context, auth service.AuthSessionService, vault service.VaultService, breach service.BreachService, clip clipboard.Clipboard) *VaultListModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 50
	search.Width = 30

	return &VaultListModel{
		ctx:       ctx,
		auth:      auth,
		vault:     vault,
		breach:    breach,
		clipboard: clip,
		search:    search,
	}
}

// Init loads the persisted vault snapshot for the signed-in user.
func (m *VaultListModel) Init() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	vault := m.vault

	return func() tea.Msg {
		session, ok := auth.Current()
		if !ok {
			return vaultLoadedMsg{err: service.ErrInvalidState}
		}
		return vaultLoadedMsg{err: vault.Load(ctx, session.UserID)}
	}
}

func (m *VaultListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case vaultLoadedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		m.refresh()
		return m, nil

	case vaultSavedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.status = result.what + " copied to clipboard"
		return m, nil

	case breachScanMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			m.refresh()
			return m, nil
		}
		m.status = fmt.Sprintf("Breach scan done: %d compromised", result.compromised)
		m.refresh()
		return m, m.cmdSnapshot()

	case logoutDoneMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "menu", Payload: result} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refresh()
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "v":
		if item, ok := m.selected(); ok {
			m.vault.ToggleVisibility(item.ID)
		}
	case "c":
		if item, ok := m.selected(); ok {
			return m, m.cmdCopy("Password", item.Password)
		}
	case "u":
		if item, ok := m.selected(); ok {
			return m, m.cmdCopy("Username", item.Username)
		}
	case "d":
		if item, ok := m.selected(); ok {
			m.vault.Remove(item.ID)
			m.refresh()
			return m, m.cmdSnapshot()
		}
	case "n":
		return m, func() tea.Msg { return NavigateTo{Page: "add"} }
	case "g":
		return m, func() tea.Msg { return NavigateTo{Page: "generator"} }
	case "b":
		m.status = "Scanning passwords against breach corpus..."
		return m, m.cmdBreachScan()
	case "t":
		// Optional for accounts not yet enrolled; the router refuses the
		// page otherwise.
		return m, func() tea.Msg { return NavigateTo{Page: "twofactor"} }
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *VaultListModel) View() string {
	var b strings.Builder

	b.WriteString("Search │ [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	if len(m.items) == 0 {
		b.WriteString("Vault is empty.\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		password := passwordMask
		if m.vault.IsVisible(item.ID) {
			password = item.Password
		}

		title := fitText(item.Title, 20)
		if item.IsCompromised {
			title = compromisedStyle.Render(title) + " !"
		}

		b.WriteString(fmt.Sprintf("%s %-22s │ %-20s │ %s\n", cursor, title, fitText(item.Username, 20), password))
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	hotKeys := "/: search │ v: show/hide │ c: copy pass │ u: copy user │ d: delete │ n: new │ g: generator │ b: breach scan"
	if session, ok := m.auth.Current(); ok && !session.HasTwoFactor {
		hotKeys += " │ t: setup 2fa"
	}
	hotKeys += " │ l: logout"

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// refresh re-reads the list from the vault applying the current filter and
// clamps the cursor.
func (m *VaultListModel) refresh() {
	m.items = m.vault.List(m.search.Value())
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *VaultListModel) selected() (models.Credential, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func (m *VaultListModel) cmdCopy(what, text string) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: clip.Copy(text)}
	}
}

func (m *VaultListModel) cmdSnapshot() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	vault := m.vault

	return func() tea.Msg {
		session, ok := auth.Current()
		if !ok {
			return vaultSavedMsg{err: service.ErrInvalidState}
		}
		return vaultSavedMsg{err: vault.Snapshot(ctx, session.UserID)}
	}
}

func (m *VaultListModel) cmdBreachScan() tea.Cmd {
	ctx := m.ctx
	breach := m.breach

	return func() tea.Msg {
		compromised, err := breach.CheckVault(ctx)
		return breachScanMsg{compromised: compromised, err: err}
	}
}

// cmdLogout snapshots the vault, wipes it from memory, and ends the session.
func (m *VaultListModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	vault := m.vault

	return func() tea.Msg {
		if session, ok := auth.Current(); ok {
			if err := vault.Snapshot(ctx, session.UserID); err != nil {
				return logoutDoneMsg{err: err}
			}
		}
		vault.Reset()
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
