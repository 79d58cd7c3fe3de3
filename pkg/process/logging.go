package process

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Development mode switches to the
// console encoder with debug enabled.
func NewLogger(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, Exit(ExitStartup, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, Exit(ExitStartup, err)
	}
	return log, nil
}
