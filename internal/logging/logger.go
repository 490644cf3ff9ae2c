// Package logging builds the zap logger. The TUI owns stdout and stderr,
// so output always goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"leadconsole/internal/config"
)

// New returns a JSON file logger for cfg. A disabled config, or one with
// no file, yields zap.NewNop().
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Disabled || cfg.File == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
