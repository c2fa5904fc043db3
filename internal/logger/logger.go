package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func config(development bool) zap.Config {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
	return zap.NewProductionConfig()
}

// New creates a new zap logger writing to stderr.
func New(development bool) (*zap.Logger, error) {
	return config(development).Build()
}

// NewFile creates a logger that appends to path only, without colour codes.
func NewFile(development bool, path string) (*zap.Logger, error) {
	cfg := config(development)
	if development {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Tee fans every entry out to all of logs.
func Tee(logs ...*zap.Logger) *zap.Logger {
	cores := make([]zapcore.Core, 0, len(logs))
	for _, l := range logs {
		cores = append(cores, l.Core())
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// Must creates a logger or panics
func Must(development bool) *zap.Logger {
	log, err := New(development)
	if err != nil {
		panic(err)
	}
	return log
}
