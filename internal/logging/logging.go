// Package logging provides logr.Logger construction backed by zap,
// plus context helpers for threading loggers through library calls.
//
// Library code logs at V(DEBUG) and above only; a caller that never
// installs a logger gets silent, allocation-free no-ops.
package logging

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// NewLogger returns a production zap-backed logger that emits records
// up to the given verbosity level.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		// zap.NewProductionConfig only fails on invalid output paths,
		// which the default config cannot have.
		panic(err)
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger returns a development-mode logger suitable for test
// suites: human-readable output at full verbosity.
func NewTestLogger() logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-TRACE))
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(zl)
}

// FromContext returns the logger stored in ctx, or a discarding logger
// when none was installed.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}

// IntoContext returns a copy of ctx carrying the given logger.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}
