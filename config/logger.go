package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger from LOG_LEVEL, LOG_JSON and
// LOG_FILE. When LOG_FILE is set, output also goes to a size-rotated
// file. The returned cleanup flushes buffered entries.
func NewLogger() (*zap.Logger, func()) {
	var lvl zapcore.Level
	if err := lvl.Set(os.Getenv("LOG_LEVEL")); err != nil {
		lvl = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if os.Getenv("LOG_JSON") == "true" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.TimeKey = "ts"
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl),
	}

	if file := os.Getenv("LOG_FILE"); file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotator), lvl))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	cleanup := func() { _ = l.Sync() }
	return l, cleanup
}
