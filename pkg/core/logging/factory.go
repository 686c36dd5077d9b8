// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating zap loggers
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	twerror "github.com/msto63/throwif/foundation/core/error"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, attached to every entry
	Name string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "console" (default: console)

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: FormatConsole,
	}
}

// NewLogger creates a zap logger from cfg
func NewLogger(cfg LoggerConfig) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	core := zapcore.NewCore(newEncoder(format), zapcore.AddSync(output), level)

	logger := zap.New(core)
	if cfg.Name != "" {
		logger = logger.Named(cfg.Name)
	}
	return logger, nil
}

// NewSimpleLogger creates a console logger at info level, falling back to a
// no-op logger if construction fails
func NewSimpleLogger(name string) *zap.Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newEncoder(format string) zapcore.Encoder {
	if format == FormatJSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// GuardError returns fields describing err. Guard errors contribute their
// kind, code and parameter name; any other error is logged as is.
func GuardError(err error) []zap.Field {
	var guardErr *twerror.Error
	if !errors.As(err, &guardErr) {
		return []zap.Field{zap.Error(err)}
	}

	fields := []zap.Field{
		zap.String("error", guardErr.Message()),
		zap.Stringer("kind", guardErr.Kind()),
		zap.String("code", guardErr.Code().String()),
	}
	if name := guardErr.ParamName(); name != "" {
		fields = append(fields, zap.String("param", name))
	}
	if actual, ok := guardErr.ActualValue(); ok {
		fields = append(fields, zap.String("actual", fmt.Sprintf("%v", actual)))
	}
	return fields
}
