// Package logging wires zap into the logr interface used throughout the
// optimizer. Loggers travel via context so library code never holds a global.
package logging

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewLogger returns a production logr.Logger backed by zap. Verbose enables
// development encoding and debug-level output.
func NewLogger(verbose bool) logr.Logger {
	var zl *zap.Logger
	var err error
	if verbose {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		// Construction of the stock configs cannot fail at runtime; fall
		// back to a no-op logger rather than panicking in a CLI.
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger returns a development logger for use in tests.
func NewTestLogger() logr.Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// IntoContext stores the logger in the context.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext retrieves the logger from the context, or a discard logger if
// none was stored.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
