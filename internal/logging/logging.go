// Package logging manages the process-wide slog logger: stderr text during
// startup, then stderr text plus a rotating JSON log file once config loads.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions controls the rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Manager owns the logger and its file sink.
type Manager struct {
	mu      sync.Mutex
	stderr  io.Writer
	handler *swapHandler
	logger  *slog.Logger
	level   *slog.LevelVar
	file    *lumberjack.Logger
}

// NewManager creates a Manager in bootstrap mode writing text to stderr.
func NewManager() *Manager {
	return newManager(os.Stderr)
}

func newManager(stderr io.Writer) *Manager {
	level := new(slog.LevelVar)
	level.Set(DefaultLevel)

	handler := newSwapHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &Manager{
		stderr:  stderr,
		handler: handler,
		logger:  slog.New(handler),
		level:   level,
	}
}

// Logger returns the managed logger. It stays valid across Upgrade calls.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Upgrade adds a JSON sink rotated by lumberjack alongside stderr and sets the
// level. Calling it again replaces the previous file sink.
func (m *Manager) Upgrade(opts FileOptions, level slog.Level) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if opts.Path == "" {
		return fmt.Errorf("log file path is empty")
	}

	dir := filepath.Dir(opts.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %q; %w", dir, err)
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	if m.file != nil {
		_ = m.file.Close()
	}
	m.file = file
	m.level.Set(level)

	handlerOpts := &slog.HandlerOptions{Level: m.level}
	m.handler.swap(slogmulti.Fanout(
		slog.NewTextHandler(m.stderr, handlerOpts),
		slog.NewJSONHandler(file, handlerOpts),
	))

	return nil
}

// SetLevel changes the log level for all future records.
func (m *Manager) SetLevel(level slog.Level) {
	m.level.Set(level)
}

// Close releases the log file, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	return err
}
