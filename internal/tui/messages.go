package tui

import "github.com/MKhiriev/go-user-admin/models"

type loginDoneMsg struct {
	err error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userSavedMsg struct {
	user models.User
	err  error
}

type userDeletedMsg struct {
	id  string
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
