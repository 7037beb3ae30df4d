// License: GPLv3 Copyright: 2026, The lsicons Authors

// Package logging provides the structured diagnostics logger used by the
// command line tools. Diagnostics always go to stderr so they never mix with
// listing output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global_logger *zap.Logger
	global_level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	// Defaults to stderr
	OutputPath string
}

func Init(cfg Config) error {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return err
		}
	}
	var config zap.Config
	if cfg.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.DisableStacktrace = true
		config.DisableCaller = true
		config.EncoderConfig.TimeKey = ""
	}
	global_level.SetLevel(level)
	config.Level = global_level
	config.OutputPaths = []string{"stderr"}
	if cfg.OutputPath != "" {
		config.OutputPaths = []string{cfg.OutputPath}
	}
	config.ErrorOutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return err
	}
	global_logger = logger
	return nil
}

func SetLevel(level zapcore.Level) {
	global_level.SetLevel(level)
}

func Sync() error {
	if global_logger != nil {
		return global_logger.Sync()
	}
	return nil
}

func L() *zap.Logger {
	if global_logger == nil {
		if err := Init(Config{}); err != nil {
			global_logger = zap.NewNop()
		}
	}
	return global_logger
}
