package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/adapter"
)

// mapAdapterError converts adapter sentinels into service sentinels. The
// server message, when there is one, stays in the error text after ": ".
// When tokens is non-nil a 401 or 403 clears the stored token.
func mapAdapterError(err error, tokens interface{ SetToken(string) }) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		if tokens != nil {
			tokens.SetToken("")
		}
		return fmt.Errorf("%w: %s", ErrSessionExpired, msg)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrValidation, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerInternal
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// UserMessage returns the text shown to the operator for err: the server
// message for validation failures, fixed wording for the other sentinels
// and the raw error otherwise.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrServerUnavailable):
		return "server unavailable"
	case errors.Is(err, ErrSessionExpired):
		return "session expired, please log in again"
	case errors.Is(err, ErrNotFound):
		return "User not found"
	case errors.Is(err, ErrServerInternal):
		return "internal server error"
	case errors.Is(err, ErrValidation):
		if msg := extractBody(err); msg != "" && msg != err.Error() {
			return msg
		}
		return "All fields are required"
	}
	return err.Error()
}
