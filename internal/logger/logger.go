// Package logger provides verbose logging for the ResumeBuddy CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to trace each pipeline stage. Secrets must pass
// through Redact before they reach any log line.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Stage prints how long a pipeline stage took if verbose mode is enabled.
func Stage(name string, started time.Time) {
	Debug("%s took %s", name, time.Since(started).Round(time.Millisecond))
}

// redactVisible is the number of trailing characters Redact leaves readable.
const redactVisible = 4

// Redact masks a secret for display, keeping only its last few characters.
// Short secrets are masked entirely.
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= redactVisible*2 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-redactVisible) + string(runes[len(runes)-redactVisible:])
}

// RedactIn replaces every occurrence of secret in text with its masked form.
func RedactIn(text, secret string) string {
	if secret == "" {
		return text
	}
	return strings.ReplaceAll(text, secret, Redact(secret))
}
