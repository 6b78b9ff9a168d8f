// Package logging builds the shared zap logger: console output for the
// terminal the app was launched from, plus a rotated file under the data
// directory so failed overnight batches can be diagnosed afterwards.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits
const (
	LogFileName     = "sora-batch.log"
	MaxSizeMB       = 10
	MaxBackups      = 5
	MaxAgeDays      = 30
	CompressOldLogs = true
)

// New creates the application logger writing to both the console and a
// rotated file in logsDir. When debug is true, the console shows debug lines.
func New(logsDir string, debug bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   CompressOldLogs,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(fileWriter),
		level,
	)

	logger := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger.Sugar()
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
