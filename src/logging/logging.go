// Package logging builds the session logger. The terminal is in raw mode
// while the editor runs, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// SessionID returns a short identifier that tags every line a process logs.
func SessionID() string {
	return uuid.NewString()[:8]
}

// New returns a logger writing to w, prefixed with the session id.
func New(w io.Writer, session string) *log.Logger {
	return log.New(w, fmt.Sprintf("crew[%s] ", session), log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// Open creates the logger for path, appending to the file. An empty path
// yields a discarding logger. The returned close function is never nil.
func Open(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, SessionID()), f.Close, nil
}
