/*
PURPOSE:
  Provides a structured logger for the VPN analyzer.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.
  - Warnings for skipped result files must be visible.

  Implementation-discovered:
  - Needs Debug for per-file details behind --verbose.

ARCHITECTURE INTEGRATION:
  - Used everywhere as the default logger.
  - Loader and Engine keep their own *slog.Logger field so tests can inject one.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Level is held in a LevelVar so it can change after init.

USAGE:
  output.Logger.Info("message", "key", "value")
  output.SetLevel(slog.LevelDebug)

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - All.

MAINTENANCE:
  - JSON handler for non-interactive use?
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var (
	Logger *slog.Logger
	level  = new(slog.LevelVar)
)

func init() {
	// Logs go to stderr so stdout stays clean for the summary.
	Logger = NewLogger(os.Stderr)
}

// NewLogger builds a text logger writing to w, sharing the package level.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// SetLevel changes the minimum level of loggers built by NewLogger.
func SetLevel(l slog.Level) {
	level.Set(l)
}
