package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/models"
)

// generatedPasswordMsg pre-fills the password field when the user arrives
// from the generator page.
type generatedPasswordMsg struct {
	password string
}

const (
	fieldTitle = iota
	fieldUsername
	fieldEmail
	fieldPassword
	fieldWebsite
	fieldNotes
	fieldCategory
	fieldCount
)

// CredentialFormModel is the add-credential form. Validation happens in the
// vault service; the form only relays its error text.
type CredentialFormModel struct {
	ctx   context.Context
	auth  service.AuthSessionService
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewCredentialFormModel(ctx context.Context, auth service.AuthSessionService, vault service.VaultService) *CredentialFormModel {
	labels := [fieldCount]struct {
		placeholder string
		limit       int
		masked      bool
	}{
		fieldTitle:    {"title", 50, false},
		fieldUsername: {"username", 50, false},
		fieldEmail:    {"email (optional)", 64, false},
		fieldPassword: {"password", 64, true},
		fieldWebsite:  {"website (optional)", 128, false},
		fieldNotes:    {"notes (optional)", 256, false},
		fieldCategory: {"category (optional)", 50, false},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label.placeholder
		input.CharLimit = label.limit
		input.Width = 40
		if label.masked {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		inputs[i] = input
	}
	inputs[fieldTitle].Focus()

	return &CredentialFormModel{
		ctx:    ctx,
		auth:   auth,
		vault:  vault,
		inputs: inputs,
	}
}

func (m *CredentialFormModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *CredentialFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case generatedPasswordMsg:
		m.inputs[fieldPassword].SetValue(result.password)
		return m, textinput.Blink

	case vaultSavedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "vault"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "vault"} }
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "ctrl+g":
			return m, func() tea.Msg { return NavigateTo{Page: "generator"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(models.CredentialInput{
				Title:    m.inputs[fieldTitle].Value(),
				Username: m.inputs[fieldUsername].Value(),
				Email:    m.inputs[fieldEmail].Value(),
				Password: m.inputs[fieldPassword].Value(),
				Website:  m.inputs[fieldWebsite].Value(),
				Notes:    m.inputs[fieldNotes].Value(),
				Category: m.inputs[fieldCategory].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CredentialFormModel) View() string {
	labels := []string{"Title   ", "Username", "Email   ", "Password", "Website ", "Notes   ", "Category"}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(" │ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

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

	return renderPage("NEW CREDENTIAL", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ctrl+g: generator │ enter: save")
}

func (m *CredentialFormModel) cmdSave(input models.CredentialInput) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	vault := m.vault

	return func() tea.Msg {
		if _, err := vault.Add(ctx, input); err != nil {
			return vaultSavedMsg{err: err}
		}

		session, ok := auth.Current()
		if !ok {
			return vaultSavedMsg{err: service.ErrInvalidState}
		}
		return vaultSavedMsg{err: vault.Snapshot(ctx, session.UserID)}
	}
}

func (m *CredentialFormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
	m.inputs[fieldTitle].Focus()
	m.submitting = false
	m.errMsg = ""
}

func (m *CredentialFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CredentialFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
