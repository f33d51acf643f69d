// Package logging builds the slog loggers used by the iscreate commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Logging settings, usually read from the log.* configuration keys
type Config struct {
	// debug, info, warn or error
	Level string
	// If not empty, records are also written as JSON lines to this file
	File string
	// Destination of the human readable records. Defaults to stderr
	Console io.Writer
}

// Parses a level name. An empty name means info
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%v': %w", name, err)
	}

	return level, nil
}

// Creates a logger writing text records to the console and, if configured,
// JSON records to a log file. The returned closer releases the log file
func New(config Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	console := config.Console
	if console == nil {
		console = os.Stderr
	}

	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(console, options)}
	var closer io.Closer = nopCloser{}

	if config.File != "" {
		file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, options))
		closer = file
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
