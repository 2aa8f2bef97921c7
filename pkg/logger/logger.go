package logger

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger
}

func New(cfg config.Logger) (Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return Logger{}, fmt.Errorf("parse level error: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.DisableStacktrace = level > zapcore.DebugLevel

	if len(cfg.Output) != 0 {
		zcfg.OutputPaths = cfg.Output
	}

	if len(cfg.ErrOutput) != 0 {
		zcfg.ErrorOutputPaths = cfg.ErrOutput
	}

	l, err := zcfg.Build()
	if err != nil {
		return Logger{}, fmt.Errorf("build logger error: %w", err)
	}

	return Logger{l.Sugar()}, nil
}

// Nop discards everything.
func Nop() Logger {
	return Logger{zap.NewNop().Sugar()}
}

func (l Logger) Named(name string) Logger {
	return Logger{l.SugaredLogger.Named(name)}
}

// Close flushes buffered entries. Terminals and pipes cannot be synced, so
// EINVAL and ENOTTY from stdout or stderr are not reported.
func (l Logger) Close() error {
	if err := l.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		return fmt.Errorf("sync error: %w", err)
	}

	return nil
}
