// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorCode is the closed set of error kinds reported by the API in the
// "code" field of every error body. Clients branch on it (or on the HTTP
// status) instead of matching free-text messages.
type ErrorCode string

const (
	CodeBadRequest         ErrorCode = "BAD_REQUEST"
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// IsKnown reports whether c belongs to the closed set above.
func (c ErrorCode) IsKnown() bool {
	switch c {
	case CodeBadRequest, CodeValidation, CodeNotFound, CodeUnauthorized, CodeInvalidCredentials, CodeInternal:
		return true
	default:
		return false
	}
}
