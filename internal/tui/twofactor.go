package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/service"
)

// TwoFactorModel runs authenticator enrollment: it shows the TOTP secret and
// otpauth URL, then verifies a code typed from the authenticator app.
// Reached either because the backend mandates enrollment or as an optional
// action from the vault; in the optional case esc returns to the vault.
type TwoFactorModel struct {
	ctx  context.Context
	auth service.AuthSessionService

	secret     string
	url        string
	codeInput  textinput.Model
	submitting bool
	errMsg     string
}

func NewTwoFactorModel(ctx context.Context, auth service.AuthSessionService) *TwoFactorModel {
	codeInput := textinput.New()
	codeInput.Placeholder = "6-digit code"
	codeInput.CharLimit = 6
	codeInput.Width = 10
	codeInput.Focus()

	return &TwoFactorModel{
		ctx:       ctx,
		auth:      auth,
		codeInput: codeInput,
	}
}

// Init requests the pending enrollment secret from the auth service.
func (m *TwoFactorModel) Init() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return tea.Batch(textinput.Blink, func() tea.Msg {
		secret, url, err := auth.TwoFactorEnrollment(ctx)
		return enrollmentReadyMsg{secret: secret, url: url, err: err}
	})
}

func (m *TwoFactorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case enrollmentReadyMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.secret = result.secret
		m.url = result.url
		return m, nil

	case setupResultMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		target := pageForState(result.session.State())
		return m, func() tea.Msg { return NavigateTo{Page: target} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.submitting {
				return m, nil
			}

			code := strings.TrimSpace(m.codeInput.Value())
			if len(code) != 6 {
				m.errMsg = "Enter the 6-digit code from your authenticator"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(code)

		case "esc":
			// The router refuses this when enrollment is mandated, so a
			// mandatory enrollment cannot be escaped.
			return m, func() tea.Msg { return NavigateTo{Page: "vault"} }
		}
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

func (m *TwoFactorModel) View() string {
	var b strings.Builder
	b.WriteString("Add SecureVault to your authenticator app.\n\n")
	b.WriteString("Secret │ ")
	b.WriteString(orDash(m.secret))
	b.WriteString("\n")
	b.WriteString("URL    │ ")
	b.WriteString(fitText(orDash(m.url), 60))
	b.WriteString("\n\n")
	b.WriteString("Code   │ [")
	b.WriteString(m.codeInput.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	} else {
		b.WriteString("\n[Verify]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("TWO-FACTOR SETUP", strings.TrimRight(b.String(), "\n"), "enter: verify │ esc: back")
}

func (m *TwoFactorModel) cmdVerify(code string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.CompleteTwoFactorSetup(ctx, code)
		return setupResultMsg{session: session, err: err}
	}
}
