// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the user-admin REST API.
//
// [ServerAdapter] decouples the client services from the protocol; the
// package ships an HTTP implementation built on resty
// ([NewHTTPServerAdapter]). Non-2xx responses are mapped by mapHTTPError to
// the sentinel errors in errors.go, so callers branch with [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404). The wrapped text
// after the sentinel is the message the server put in the response body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenStore holds the bearer token between requests. *session.Session
// satisfies it.
type TokenStore interface {
	Set(token string)
	Token() string
	Clear()
}

// ServerAdapter defines communication with the user-admin server.
// Implementations attach the stored bearer token to every record request and
// map transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent requests. An empty
	// token clears it.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if there is none.
	Token() string

	// Login posts the credentials to POST /login. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, username, password string) (string, error)

	// ListUsers fetches the whole record set from GET /users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateUser posts a new record to POST /users and returns it with the
	// id assigned by the server.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces the record with the given id via PUT /users/{id}.
	UpdateUser(ctx context.Context, id string, user models.User) (models.User, error)

	// DeleteUser removes the record with the given id via DELETE /users/{id}
	// and returns the removed record.
	DeleteUser(ctx context.Context, id string) (models.User, error)

	// GetVersion reads the server build version from GET /version.
	GetVersion(ctx context.Context) (string, error)
}
