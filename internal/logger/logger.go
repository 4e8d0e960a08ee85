package logger

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/config"
)

// Logger wraps the configured zerolog instance.
type Logger struct {
	zerolog zerolog.Logger
	config  LoggerConfig
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// New creates a logger from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	logger, err := NewLoggerBuilder().WithConfig(cfg).Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return *logger.GetZerolog(), nil
}

// NewWithLocation creates a logger whose timestamps render in the given
// timezone, matching the configured monitor timezone.
func NewWithLocation(cfg config.LogConfig, loc *time.Location) (zerolog.Logger, error) {
	logger, err := NewLoggerBuilder().
		WithConfig(cfg).
		WithTimeLocation(loc).
		Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return *logger.GetZerolog(), nil
}
