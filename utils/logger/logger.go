package logger

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger - "production" builds a json logger, anything else a console one
func NewLogger(env string) (*zap.Logger, error) {
	if strings.EqualFold(env, "production") {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
