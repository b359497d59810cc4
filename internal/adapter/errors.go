package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport wraps failures to reach the server at all: refused
	// connections, DNS errors, timeouts.
	ErrTransport = errors.New("transport error")

	ErrDecodingResponse = errors.New("error decoding server response")
)
