package utils

import (
	"strings"

	"github.com/google/uuid"
)

const maxTraceIDLen = 64

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// TraceIDFrom reuses a caller supplied id when it is short and printable,
// otherwise it mints a new one.
func TraceIDFrom(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > maxTraceIDLen {
		return NewTraceID()
	}
	for _, r := range incoming {
		if r < 0x21 || r > 0x7e {
			return NewTraceID()
		}
	}
	return incoming
}
