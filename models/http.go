// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login. The "email" field carries the
// username; the name is kept for compatibility with existing clients.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful POST /login.
type LoginResponse struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	AuthToken string `json:"authToken"`
}

// ErrorResponse is returned by the record endpoints on validation and
// lookup failures.
type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code,omitempty"`
}

// MessageResponse is returned by login and the auth gate on failure.
type MessageResponse struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
}
