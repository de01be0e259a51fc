package logger

import (
	"shrm-web/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{Env: "development", Version: "test"}}

	t.Run("Known Level", func(t *testing.T) {
		log := NewZapLogger(&config.DriverConfig{Logger: config.Logger{Level: "warn"}}, internalConfig)

		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		log := NewZapLogger(&config.DriverConfig{Logger: config.Logger{Level: "chatty"}}, internalConfig)

		assert.False(t, log.Core().Enabled(zap.DebugLevel))
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
	})
}
