package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a logger writing to w. format is "json" for production
// style records or "console" for development style lines.
func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder

	switch format {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("invalid log format %q: expected \"json\" or \"console\"", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapLevel)

	return zap.New(core), nil
}
