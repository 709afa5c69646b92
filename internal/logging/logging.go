// Package logging provides the application slog handler. Output goes to a
// file by default: the TUI owns the terminal, so anything written to
// stdout mid-session would tear the screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Handler is a compact colored slog handler for terminal and log-file use.
type Handler struct {
	l      *log.Logger
	level  slog.Level
	prefix string
}

// NewHandler creates a Handler writing to out at the given level.
func NewHandler(out io.Writer, level slog.Level) *Handler {
	return &Handler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrsStr := h.prefix
	r.Attrs(func(a slog.Attr) bool {
		attrsStr += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
		return true
	})

	h.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		attrsStr,
	)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	for _, a := range attrs {
		next.prefix += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
	}
	return &next
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Setup opens the application log file and installs a colored slog logger
// on it. The returned cleanup closes the file. When verbose is set the
// level drops to debug.
func Setup(verbose bool) (*slog.Logger, func(), error) {
	path, err := defaultLogPath()
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(NewHandler(f, level))
	slog.SetDefault(logger)

	return logger, func() { f.Close() }, nil
}

// defaultLogPath resolves the log file path:
// 1. QUIZDECK_LOG environment variable
// 2. $XDG_STATE_HOME/quizdeck/quizdeck.log
// 3. ~/.local/state/quizdeck/quizdeck.log
func defaultLogPath() (string, error) {
	if p := os.Getenv("QUIZDECK_LOG"); p != "" {
		return p, os.MkdirAll(filepath.Dir(p), 0o755)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "quizdeck", "quizdeck.log")
	return p, os.MkdirAll(filepath.Dir(p), 0o755)
}
