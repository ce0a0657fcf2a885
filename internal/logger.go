package internal

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger returns the process-wide sugared logger: the human-readable
// config in development, the production JSON one everywhere else.
func NewLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if os.Getenv("ENVIRONMENT") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
