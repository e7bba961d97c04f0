package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel_PorDefectoSegunEntorno(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, level(Config{Env: "development"}))
	assert.Equal(t, zerolog.InfoLevel, level(Config{Env: "production"}))
	assert.Equal(t, zerolog.InfoLevel, level(Config{}))
}

func TestLevel_ExplicitoGanaAlEntorno(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, level(Config{Env: "development", Level: "error"}))
	assert.Equal(t, zerolog.WarnLevel, level(Config{Level: "warn"}))
}

func TestLevel_DesconocidoCaeAlDefault(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, level(Config{Env: "production", Level: "verbose"}))
}
