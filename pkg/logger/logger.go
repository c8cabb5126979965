// Package logger carries a zap logger through context.Context. Request
// scoped fields (request id, principal) are attached once with WithFields and
// show up on every line logged further down the call chain.
package logger

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON lines from info level up.
	ProductionEnvironment = "production"
)

var defaultLogger atomic.Pointer[zap.Logger] //nolint: gochecknoglobals

func init() { //nolint: gochecknoinits
	defaultLogger.Store(zap.NewNop())
}

// New builds a logger for environment. level overrides the environment
// default when it is not empty.
func New(environment, level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("could not parse log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// Setup installs the default logger for environment.
func Setup(environment string) {
	_ = SetupWithLevel(environment, "")
}

// SetupWithLevel installs the default logger for environment at level. An
// invalid level still installs the environment default and returns the parse
// error so the caller can report it.
func SetupWithLevel(environment, level string) error {
	l, err := New(environment, level)
	if err == nil {
		defaultLogger.Store(l)

		return nil
	}

	fallback, buildErr := New(environment, "")
	if buildErr != nil {
		defaultLogger.Store(zap.NewNop())

		return buildErr
	}
	defaultLogger.Store(fallback)

	return err
}

type key struct{}

// Get returns the logger stored in ctx, or the default one.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger.Load()
}

// WithLogger stores l in the returned context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger always adds fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Sync flushes the default logger. Errors are ignored: stderr does not
// support fsync on most platforms.
func Sync() {
	_ = defaultLogger.Load().Sync()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
