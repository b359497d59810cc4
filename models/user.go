// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a single administrated record of the record set.
// JSON field names are part of the wire and file format and must not change.
type User struct {
	// ID is a decimal string assigned by the server on creation
	// (max of existing numeric ids + 1, "1" for an empty set).
	ID string `json:"id"`

	// FirstName is required.
	FirstName string `json:"firstName"`

	// MiddleName is optional.
	MiddleName string `json:"middleName"`

	// LastName is required.
	LastName string `json:"lastName"`

	// Username is required and unique by convention only.
	Username string `json:"username"`

	// Password is stored and transmitted in plain text.
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// WithID returns a copy of u carrying id.
func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// UserForm is the client-side editing form for a [User]. It carries the
// record fields plus the password confirmation that never leaves the client.
type UserForm struct {
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// NewUserForm fills a form from an existing record. The confirmation field is
// pre-filled with the stored password so an unchanged record validates.
func NewUserForm(u User) UserForm {
	return UserForm{
		FirstName:       u.FirstName,
		MiddleName:      u.MiddleName,
		LastName:        u.LastName,
		Username:        u.Username,
		Password:        u.Password,
		ConfirmPassword: u.Password,
	}
}

// ToUser converts the form into a record without an id.
func (f UserForm) ToUser() User {
	return User{
		FirstName:  f.FirstName,
		MiddleName: f.MiddleName,
		LastName:   f.LastName,
		Username:   f.Username,
		Password:   f.Password,
	}
}
