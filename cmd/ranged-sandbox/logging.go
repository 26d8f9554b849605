package main

import (
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logFileOptions struct {
	path       string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

// buildLogger returns a production logger on stderr, at debug level when
// verbose. With a log file set, JSON entries are also written to a rotating
// file.
func buildLogger(verbose bool, file logFileOptions) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	if file.path == "" {
		return log, nil
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file.path,
		MaxSize:    file.maxSizeMB,
		MaxBackups: file.maxBackups,
		MaxAge:     file.maxAgeDays,
	})
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(config.EncoderConfig), w, config.Level)
	return log.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	})), nil
}
