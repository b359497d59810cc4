// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user-admin server handlers and middleware.
//
// All Msg* constants are the exact message strings written into HTTP
// response bodies. Existing clients compare some of them literally, so the
// wording must not change.
package app

const (
	// MsgLoginSuccessful is the message of a successful POST /login.
	MsgLoginSuccessful = "Login successful"

	// MsgInvalidCredentials is returned when the username is unknown or the
	// password does not match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNoTokenProvided is returned by the auth gate when the
	// Authorization header carries no token.
	MsgNoTokenProvided = "NO_TOKEN_PROVIDED"

	// MsgInvalidOrExpiredToken is returned by the auth gate when the token
	// does not verify or has expired.
	MsgInvalidOrExpiredToken = "INVALID_OR_EXPIRED_TOKEN"

	// MsgAllFieldsRequired is returned when firstName, lastName, username or
	// password is missing on create or update.
	MsgAllFieldsRequired = "All fields are required"

	// MsgUserNotFound is returned when no record has the requested id.
	MsgUserNotFound = "User not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
