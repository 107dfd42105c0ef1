// Package logger configures the application logger.
package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// New builds a slog.Logger writing text records to stderr at the given
// level, tagged with the service name.
func New(level string, service string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("service", service)), nil
}
