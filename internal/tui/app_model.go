package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageLogin page = iota
	pageUsers
)

// appModel is the root model. It renders the login page when no token is
// stored and the users page otherwise.
type appModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	users   usersModel
	login   loginModel
	records service.ClientUserService
	appInfo service.ClientAppInfoService

	page          page
	showAbout     bool
	buildInfo     models.AppBuildInfo
	serverVersion string

	logger *logger.Logger
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	m := appModel{
		ctx:       ctx,
		auth:      services.AuthService,
		records:   services.UserService,
		appInfo:   services.AppInfoService,
		login:     newLoginModel(),
		users:     newUsersModel(),
		buildInfo: buildInfo,
		logger:    logger,
	}
	m.page = m.gate()
	return m
}

func (m appModel) gate() page {
	if m.auth.Authenticated() {
		return pageUsers
	}
	return pageLogin
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdServerVersion()}
	if m.page == pageUsers {
		cmds = append(cmds, m.cmdLoadUsers(), m.users.spinner.Tick)
	} else {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showAbout {
			if key.Matches(msg, keys.about) || key.Matches(msg, keys.esc) {
				m.showAbout = false
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		return m, nil
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("login failed")
			m.login.message = errorText(msg.err)
			return m, nil
		}
		m.page = pageUsers
		m.login = newLoginModel()
		m.users = newUsersModel()
		return m, tea.Batch(m.cmdLoadUsers(), m.users.spinner.Tick)
	case usersLoadedMsg:
		if m.sessionExpired(msg.err) {
			return m.logout(errorText(msg.err))
		}
		m.users.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("load users")
			m.users.loadErr = errorText(msg.err)
			return m, nil
		}
		m.users.loadErr = ""
		m.users = m.users.setUsers(msg.users)
		return m, nil
	case userSavedMsg:
		if m.sessionExpired(msg.err) {
			return m.logout(errorText(msg.err))
		}
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("save user")
			m.users.view = m.users.view.failed(errorText(msg.err))
			return m, nil
		}
		m.users.view = m.users.view.succeeded()
		m.users = m.users.syncInputs()
		m.users = m.users.focusTable()
		m.users.status = "Saved user " + msg.user.Username
		next, cmd := m.reloadUsers()
		return next, tea.Batch(cmd, cmdClearStatus())
	case userDeletedMsg:
		if m.sessionExpired(msg.err) {
			return m.logout(errorText(msg.err))
		}
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("id", msg.id).Msg("delete user")
			m.users.status = "Error: " + errorText(msg.err)
			return m, cmdClearStatus()
		}
		if m.users.view.target == msg.id {
			m.users.view = m.users.view.clear()
			m.users = m.users.syncInputs()
		}
		m.users.status = "Deleted user #" + msg.id
		next, cmd := m.reloadUsers()
		return next, tea.Batch(cmd, cmdClearStatus())
	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("get server version")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.users.status = "Error: " + msg.err.Error()
		} else {
			m.users.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.users.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.users.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.users.spinner, cmd = m.users.spinner.Update(msg)
		return m, cmd
	}

	switch m.page {
	case pageLogin:
		return m.updateLogin(msg)
	case pageUsers:
		return m.updateUsers(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.page {
	case pageLogin:
		body = m.login.View()
	case pageUsers:
		body = m.users.View()
	}

	return appStyle.Render(body)
}

func (m appModel) sessionExpired(err error) bool {
	return errors.Is(err, service.ErrSessionExpired)
}

// logout clears the session and returns to the login page, showing message
// there when it is not empty.
func (m appModel) logout(message string) (appModel, tea.Cmd) {
	m.auth.Logout()
	m.page = m.gate()
	m.showAbout = false
	m.login = newLoginModel()
	m.login.message = message
	m.users = newUsersModel()
	return m, textinput.Blink
}
