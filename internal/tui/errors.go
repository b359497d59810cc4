// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/service"
)

// errorText renders err for the operator. Errors outside the client service
// sentinels that look like network failures read as "server unavailable".
func errorText(err error) string {
	if err == nil {
		return ""
	}

	msg := service.UserMessage(err)
	if msg == err.Error() && looksLikeNetworkFailure(msg) {
		return service.UserMessage(service.ErrServerUnavailable)
	}
	return msg
}

func looksLikeNetworkFailure(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// ErrMissingServices is returned by New when a client service is absent.
var ErrMissingServices = errors.New("tui: client services are not configured")
