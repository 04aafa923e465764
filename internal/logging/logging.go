// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTUILog is where logs go while a full-screen UI owns the terminal
// and no explicit log file was given.
const DefaultTUILog = "topgun.log"

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Setup installs a text handler writing to path, or to stderr when path is
// empty. The returned close func must be called on exit.
func Setup(path, level string) (func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	install(w, lvl)
	return closer, nil
}

// SetupTUI routes logs away from the terminal. With no path and a level
// above debug, logs are discarded; otherwise bubbletea's LogToFile opens
// the file.
func SetupTUI(path, level string) (func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		if lvl > slog.LevelDebug {
			install(io.Discard, lvl)
			return func() error { return nil }, nil
		}
		path = DefaultTUILog
	}

	f, err := tea.LogToFile(path, "topgun")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	install(f, lvl)
	return f.Close, nil
}

func install(w io.Writer, lvl slog.Level) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
