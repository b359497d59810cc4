package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const tableHeight = 10

// formField binds a form input to its validator field name.
type formField struct {
	name  string
	label string
}

var formFields = []formField{
	{name: validators.FieldFirstName, label: "First Name"},
	{name: validators.FieldMiddleName, label: "Middle Name"},
	{name: validators.FieldLastName, label: "Last Name"},
	{name: validators.FieldUsername, label: "Username"},
	{name: validators.FieldPassword, label: "Password"},
	{name: validators.FieldConfirmPassword, label: "Confirm Password"},
}

type usersModel struct {
	table   table.Model
	users   []models.User
	loading bool
	loadErr string
	spinner spinner.Model

	view        recordView
	inputs      []textinput.Model
	focus       int
	formFocused bool

	status string
}

func newUsersModel() usersModel {
	km := table.DefaultKeyMap()
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "First Name", Width: 14},
			{Title: "Middle Name", Width: 14},
			{Title: "Last Name", Width: 14},
			{Title: "Username", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
		table.WithKeyMap(km),
		table.WithStyles(usersTableStyles()),
	)

	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
		inputs[i].CharLimit = 64
		inputs[i].Placeholder = f.label
		inputs[i].PromptStyle = promptStyle
	}
	for _, i := range []int{4, 5} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return usersModel{
		table:   t,
		loading: true,
		spinner: s,
		inputs:  inputs,
	}
}

func (m usersModel) selected() (models.User, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[idx], true
}

func (m usersModel) setUsers(users []models.User) usersModel {
	m.users = users

	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{u.ID, u.FirstName, valueOrDash(u.MiddleName), u.LastName, u.Username})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
	return m
}

func (m usersModel) formFromInputs() models.UserForm {
	return models.UserForm{
		FirstName:       m.inputs[0].Value(),
		MiddleName:      m.inputs[1].Value(),
		LastName:        m.inputs[2].Value(),
		Username:        m.inputs[3].Value(),
		Password:        m.inputs[4].Value(),
		ConfirmPassword: m.inputs[5].Value(),
	}
}

// syncInputs copies the record view form into the inputs.
func (m usersModel) syncInputs() usersModel {
	f := m.view.form
	for i, v := range []string{f.FirstName, f.MiddleName, f.LastName, f.Username, f.Password, f.ConfirmPassword} {
		m.inputs[i].SetValue(v)
	}
	return m
}

func (m usersModel) focusForm() (usersModel, tea.Cmd) {
	m.formFocused = true
	m.table.Blur()
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, m.inputs[m.focus].Focus()
}

func (m usersModel) focusTable() usersModel {
	m.formFocused = false
	m.inputs[m.focus].Blur()
	m.table.Focus()
	return m
}

func (m usersModel) moveFocus(delta int) (usersModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

func (m usersModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading…\n")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render("Error: "+m.loadErr) + "\n")
	case len(m.users) == 0:
		b.WriteString("No users\n")
	default:
		b.WriteString(m.table.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.formView())

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	hotKeys := "n: new  e/enter: edit  d: delete  c: copy username  x: clear form  r: reload  i: about  L: logout  q: quit"
	if m.formFocused {
		hotKeys = "tab: next field  enter: save  ctrl+x: clear form  esc: back to table"
	}

	return renderPage("USERS", b.String(), hotKeys)
}

func (m usersModel) formView() string {
	var b strings.Builder

	title := "Add user"
	if m.view.editing() {
		title = fmt.Sprintf("Edit user #%s", m.view.target)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	for i, f := range formFields {
		b.WriteString(fmt.Sprintf("%-17s [%s]", f.label+":", m.inputs[i].View()))
		if msg, ok := m.view.fieldErrors[f.name]; ok {
			b.WriteString(" " + fieldErrorStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	switch m.view.state {
	case stateSubmitting:
		b.WriteString("\nSaving…\n")
	case stateError:
		b.WriteString("\n" + errorStyle.Render("Error: "+m.view.message) + "\n")
	}

	return b.String()
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardUsers(msg)
	}

	if m.users.formFocused {
		return m.updateUsersForm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		return m.logout("")
	case key.Matches(keyMsg, keys.about):
		m.showAbout = true
		return m, nil
	case key.Matches(keyMsg, keys.reload):
		return m.reloadUsers()
	case key.Matches(keyMsg, keys.newItem):
		m.users.view = m.users.view.clear()
		m.users = m.users.syncInputs()
		var cmd tea.Cmd
		m.users, cmd = m.users.focusForm()
		return m, cmd
	case key.Matches(keyMsg, keys.tab):
		var cmd tea.Cmd
		m.users, cmd = m.users.focusForm()
		return m, cmd
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		u, ok := m.users.selected()
		if !ok || m.users.view.submitting() {
			return m, nil
		}
		m.users.view = m.users.view.edit(u)
		m.users = m.users.syncInputs()
		var cmd tea.Cmd
		m.users, cmd = m.users.focusForm()
		return m, cmd
	case key.Matches(keyMsg, keys.delete):
		u, ok := m.users.selected()
		if !ok {
			return m, nil
		}
		m.users.status = "Deleting…"
		return m, m.cmdDeleteUser(u.ID)
	case key.Matches(keyMsg, keys.copyUser):
		u, ok := m.users.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(u.Username)
	case key.Matches(keyMsg, keys.clear):
		m.users.view = m.users.view.clear()
		m.users = m.users.syncInputs()
		return m, nil
	}

	var cmd tea.Cmd
	m.users.table, cmd = m.users.table.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateUsersForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.users = m.users.focusTable()
		return m, nil
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.nextField):
		m.users, cmd = m.users.moveFocus(1)
		return m, cmd
	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.prevField):
		m.users, cmd = m.users.moveFocus(-1)
		return m, cmd
	case key.Matches(keyMsg, keys.clearForm):
		m.users.view = m.users.view.clear()
		m.users = m.users.syncInputs()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		next, req, ok := m.users.view.submit()
		m.users.view = next
		if !ok {
			return m, nil
		}
		return m, m.cmdSaveUser(req)
	}

	if m.users.view.submitting() {
		return m, nil
	}

	m.users.inputs[m.users.focus], cmd = m.users.inputs[m.users.focus].Update(keyMsg)
	m.users.view = m.users.view.input(m.users.formFromInputs())
	return m, cmd
}

// forwardUsers passes non-key messages to the focused widget.
func (m appModel) forwardUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.users.formFocused {
		m.users.inputs[m.users.focus], cmd = m.users.inputs[m.users.focus].Update(msg)
		return m, cmd
	}
	m.users.table, cmd = m.users.table.Update(msg)
	return m, cmd
}

func (m appModel) reloadUsers() (appModel, tea.Cmd) {
	m.users.loading = true
	m.users.loadErr = ""
	return m, tea.Batch(m.cmdLoadUsers(), m.users.spinner.Tick)
}
