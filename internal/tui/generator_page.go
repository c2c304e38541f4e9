package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/securevault/securevault/internal/clipboard"
	"github.com/securevault/securevault/internal/generator"
	"github.com/securevault/securevault/models"
)

// GeneratorModel is the password generator screen: adjustable length,
// toggleable character classes, clipboard copy, and hand-off of the result
// into the add-credential form.
type GeneratorModel struct {
	clipboard clipboard.Clipboard

	opts     models.GeneratorOptions
	password string
	status   string
	errMsg   string
}

func NewGeneratorModel(clip clipboard.Clipboard) *GeneratorModel {
	return &GeneratorModel{
		clipboard: clip,
		opts:      models.DefaultGeneratorOptions(),
	}
}

// Init generates a first password so the screen never opens empty.
func (m *GeneratorModel) Init() tea.Cmd {
	return m.cmdGenerate()
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case generatedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.password = result.password
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.status = "Password copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "vault"} }
	case "left", "h":
		if m.opts.Length > models.MinPasswordLength {
			m.opts.Length--
		}
		return m, m.cmdGenerate()
	case "right", "l":
		if m.opts.Length < models.MaxPasswordLength {
			m.opts.Length++
		}
		return m, m.cmdGenerate()
	case "1":
		m.opts.UseUppercase = !m.opts.UseUppercase
		return m, m.cmdGenerate()
	case "2":
		m.opts.UseLowercase = !m.opts.UseLowercase
		return m, m.cmdGenerate()
	case "3":
		m.opts.UseNumbers = !m.opts.UseNumbers
		return m, m.cmdGenerate()
	case "4":
		m.opts.UseSymbols = !m.opts.UseSymbols
		return m, m.cmdGenerate()
	case "r", "enter":
		return m, m.cmdGenerate()
	case "c":
		if m.password == "" {
			return m, nil
		}
		return m, m.cmdCopy()
	case "u":
		if m.password == "" {
			return m, nil
		}
		password := m.password
		return m, func() tea.Msg {
			return NavigateTo{Page: "add", Payload: generatedPasswordMsg{password: password}}
		}
	}

	return m, nil
}

func (m *GeneratorModel) View() string {
	classMark := func(enabled bool) string {
		if enabled {
			return "x"
		}
		return " "
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Length   │ %d  (%d-%d)\n\n", m.opts.Length, models.MinPasswordLength, models.MaxPasswordLength))
	b.WriteString(fmt.Sprintf("[%s] 1: uppercase\n", classMark(m.opts.UseUppercase)))
	b.WriteString(fmt.Sprintf("[%s] 2: lowercase\n", classMark(m.opts.UseLowercase)))
	b.WriteString(fmt.Sprintf("[%s] 3: numbers\n", classMark(m.opts.UseNumbers)))
	b.WriteString(fmt.Sprintf("[%s] 4: symbols\n\n", classMark(m.opts.UseSymbols)))
	b.WriteString("Password │ ")
	b.WriteString(orDash(m.password))
	b.WriteString("\n")

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

	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"),
		"←/→: length │ 1-4: classes │ r: regenerate │ c: copy │ u: use in form │ esc: back")
}

func (m *GeneratorModel) cmdGenerate() tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		password, err := generator.Generate(opts)
		return generatedMsg{password: password, err: err}
	}
}

func (m *GeneratorModel) cmdCopy() tea.Cmd {
	clip := m.clipboard
	password := m.password
	return func() tea.Msg {
		return copiedMsg{what: "Password", err: clip.Copy(password)}
	}
}
