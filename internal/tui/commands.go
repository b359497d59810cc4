package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, username, password)}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	svc := m.records
	return func() tea.Msg {
		users, err := svc.List(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m appModel) cmdSaveUser(req submitRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.records
	return func() tea.Msg {
		if req.isUpdate() {
			user, err := svc.Update(ctx, req.id, req.user)
			return userSavedMsg{user: user, err: err}
		}
		user, err := svc.Create(ctx, req.user)
		return userSavedMsg{user: user, err: err}
	}
}

func (m appModel) cmdDeleteUser(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.records
	return func() tea.Msg {
		_, err := svc.Delete(ctx, id)
		return userDeletedMsg{id: id, err: err}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.appInfo
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
