// Package logger provides verbose diagnostics for the stacks CLI.
// With --verbose enabled, the search pipeline and catalogue operations
// narrate what they are doing to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects verbose logs. Defaults to os.Stderr; tests point
// it at a buffer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug logs a debug message when verbose mode is enabled.
func Debug(format string, args ...any) {
	emit(levelDebug, format, args...)
}

// Info logs an informational message when verbose mode is enabled.
func Info(format string, args ...any) {
	emit(levelInfo, format, args...)
}

// Warn logs a warning when verbose mode is enabled.
func Warn(format string, args ...any) {
	emit(levelWarn, format, args...)
}

// Section logs a section header when verbose mode is enabled, visually
// separating pipeline stages.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(out, "\n=== %s ===\n", name)
	}
}

func emit(lvl level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(out, "["+string(lvl)+"] "+format+"\n", args...)
	}
}
