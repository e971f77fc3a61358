// Package logging builds the application's zap logger: JSON lines into a
// rotated file under the data directory, and optionally a console core on
// stderr for CLI commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger. Zero sizes fall back to lumberjack's
// own defaults.
type Options struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`

	// Console adds a human-readable core. The TUI leaves it off because
	// stderr shares the terminal with the interface.
	Console      bool      `mapstructure:"-"`
	ConsoleLevel string    `mapstructure:"console_level" validate:"omitempty,oneof=debug info warn error"`
	ConsoleOut   io.Writer `mapstructure:"-"`
}

// DefaultOptions logs info and above to file; File is resolved by the
// config layer.
func DefaultOptions() Options {
	return Options{
		Level:        "info",
		MaxSizeMB:    10,
		MaxBackups:   3,
		MaxAgeDays:   28,
		Compress:     true,
		ConsoleLevel: "warn",
	}
}

// New returns the logger and a sync func to defer. With no File and no
// Console the logger discards everything.
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(orDefault(opts.Level, "info"))
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	enc := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	var rotator *lumberjack.Logger
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(rotator), level))
	}

	if opts.Console {
		clevel, err := zapcore.ParseLevel(orDefault(opts.ConsoleLevel, "warn"))
		if err != nil {
			return nil, nil, fmt.Errorf("console log level: %w", err)
		}
		out := opts.ConsoleOut
		if out == nil {
			out = os.Stderr
		}
		cenc := enc
		cenc.TimeKey = ""
		cenc.CallerKey = ""
		cenc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(cenc), zapcore.AddSync(out), clevel))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}, nil
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sync := func() {
		_ = logger.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return logger, sync, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
