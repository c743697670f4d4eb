// Package logging builds the charmbracelet loggers used by the commands and
// the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel is the environment variable read when no --log-level is given.
const EnvLevel = "LOG_LEVEL"

// ParseLevel maps debug, info, warn or error (any case) to a log level.
// An empty string means info.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return log.InfoLevel, nil
	case "DEBUG":
		return log.DebugLevel, nil
	case "INFO":
		return log.InfoLevel, nil
	case "WARN", "WARNING":
		return log.WarnLevel, nil
	case "ERROR":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
}

// LevelFromEnv resolves the level from flag, falling back to LOG_LEVEL.
func LevelFromEnv(flag string) (log.Level, error) {
	if flag != "" {
		return ParseLevel(flag)
	}
	return ParseLevel(os.Getenv(EnvLevel))
}

// New creates a timestamped logger writing to w with the given prefix.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OpenFile opens path for appending and returns a logger writing to it, for
// the local TUI which owns stdout and stderr. The caller closes the file.
func OpenFile(path, prefix string, level log.Level) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}
