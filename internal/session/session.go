// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the bearer token of one terminal client session.
//
// A *Session is created once in the client composition root and handed to
// every component that needs the token: the REST adapter reads it for the
// Authorization header, the root TUI model gates on [Session.Present].
package session

import (
	"strings"
	"sync"
)

// Session is a mutex-guarded token holder. The zero value is an empty,
// ready to use session.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Set stores token after trimming surrounding whitespace. Setting an empty
// token is the same as Clear.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Token returns the stored token or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Present reports whether a token is stored. Expiry is not checked; the
// server answers 401 for a stale token.
func (s *Session) Present() bool {
	return s.Token() != ""
}
