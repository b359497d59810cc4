package tui

import (
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFieldUsername = iota
	loginFieldPassword
	loginFieldCount
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	message    string
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, loginFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
		inputs[i].CharLimit = 64
		inputs[i].PromptStyle = promptStyle
	}
	inputs[loginFieldUsername].Placeholder = "username"
	inputs[loginFieldPassword].Placeholder = "password"
	inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	inputs[loginFieldPassword].EchoCharacter = '*'
	inputs[loginFieldUsername].Focus()

	return loginModel{inputs: inputs}
}

func (m loginModel) username() string {
	return m.inputs[loginFieldUsername].Value()
}

func (m loginModel) password() string {
	return m.inputs[loginFieldPassword].Value()
}

func (m loginModel) focusNext() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) focusPrev() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Username: [" + m.inputs[loginFieldUsername].View() + "]\n")
	b.WriteString("Password: [" + m.inputs[loginFieldPassword].View() + "]\n")

	if m.submitting {
		b.WriteString("\nSigning in…\n")
	}
	if m.message != "" {
		b.WriteString("\n" + errorStyle.Render(m.message) + "\n")
	}

	return renderPage("LOGIN", b.String(), "tab: next field  enter: sign in  esc: quit")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.nextField):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.prevField):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username, password := m.login.username(), m.login.password()
			if message := validators.ValidateLoginForm(username, password); message != "" {
				m.login.message = message
				return m, nil
			}
			m.login.message = ""
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}
