// Package logger wraps zap for the musicapp command and its tests.
//
// Renderings go to stdout, so logs always go to stderr.
package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the subset of zap.SugaredLogger the module logs through.
// Components receive one and call Named with their own name.
type Logger interface {
	Named(name string) Logger

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

type Config struct {
	Level zapcore.Level
	// JSON selects zap's production JSON encoder; otherwise a console encoder is used
	JSON bool
}

// New returns a Logger writing to stderr.
func (c *Config) New() (Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if c.JSON {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level.SetLevel(c.Level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// TestObserved returns a Logger writing to tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())).Sugar()}, logs
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}
