package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/kibahcorps/schedule1-go/internal/application/logging"
	"github.com/kibahcorps/schedule1-go/internal/infrastructure/config"
)

// ConsoleLogger adapts slog to the application Logger interface
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger wraps an existing slog logger
func NewConsoleLogger(logger *slog.Logger) *ConsoleLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleLogger{logger: logger}
}

// New builds a logger from configuration. The returned closer releases the log
// file when output is "file" and is a no-op otherwise.
func New(cfg config.LoggingConfig) (*ConsoleLogger, io.Closer, error) {
	var out io.Writer
	var closer io.Closer = nopCloser{}

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		out = os.Stderr
	}

	return NewWriterLogger(out, cfg), closer, nil
}

// NewWriterLogger builds a logger writing to w
func NewWriterLogger(w io.Writer, cfg config.LoggingConfig) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return NewConsoleLogger(slog.New(handler))
}

// ParseLevel maps config and application level names onto slog levels
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", logging.LevelWarn:
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log implements logging.Logger. Metadata keys are emitted in sorted order.
func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	l.logger.LogAttrs(context.Background(), ParseLevel(level), message, attrs...)
}

// Slog exposes the underlying logger for libraries that want one
func (l *ConsoleLogger) Slog() *slog.Logger {
	return l.logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
