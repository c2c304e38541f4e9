package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/service"
)

// MasterSetupModel completes first-login onboarding: the user picks the
// master password that will protect the vault. There is no way back from
// this screen short of quitting; an account without a master password is
// unusable.
type MasterSetupModel struct {
	ctx  context.Context
	auth service.AuthSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewMasterSetupModel(ctx context.Context, auth service.AuthSessionService) *MasterSetupModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 64
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat master password"
	confirmInput.CharLimit = 64
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &MasterSetupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{passwordInput, confirmInput},
	}
}

func (m *MasterSetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MasterSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(setupResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		target := pageForState(result.session.State())
		return m, func() tea.Msg { return NavigateTo{Page: target} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusNext()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			pass := m.inputs[0].Value()
			confirm := m.inputs[1].Value()

			switch {
			case len(pass) < 8:
				m.errMsg = "Master password must be at least 8 characters"
				return m, nil
			case pass != confirm:
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetup(pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *MasterSetupModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome! Choose the master password that protects your vault.\n\n")
	b.WriteString("Master password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Confirm         │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("MASTER PASSWORD SETUP", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *MasterSetupModel) cmdSetup(pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.CompleteMasterPasswordSetup(ctx, pass)
		return setupResultMsg{session: session, err: err}
	}
}

func (m *MasterSetupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
