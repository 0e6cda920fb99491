// Package logging hands out component-scoped logrus entries.
// The terminal belongs to the UI, so output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

const EnvLogLevel = "PATHVIEW_LOG_LEVEL"

// Config is filled from command line flags.
type Config struct {
	// Level is the minimum level: "debug", "info", "warn" or "error".
	// PATHVIEW_LOG_LEVEL overrides it.
	Level string
	// File is the log file path. Empty discards output.
	File string
	// JSON switches the formatter to logrus.JSONFormatter.
	JSON bool
}

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	base      = newBaseLogger()
	closer    io.Closer
)

var osOpenFile = os.OpenFile
var osMkdirAll = os.MkdirAll

func newBaseLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// Configure applies cfg to all loggers handed out so far and later.
func Configure(cfg Config) error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelStr := "info"
	if v := os.Getenv(EnvLogLevel); v != "" {
		levelStr = v
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	if cfg.JSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if cfg.File == "" {
		base.SetOutput(io.Discard)
		return nil
	}
	if err = osMkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		base.SetOutput(io.Discard)
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		base.SetOutput(io.Discard)
		return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	base.SetOutput(f)
	closer = f
	return nil
}

// NewLogger returns the logger for a component, creating it once.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// Close releases the log file, if any.
func Close() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	base.SetOutput(io.Discard)
}
