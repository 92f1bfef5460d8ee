package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/pkg/logger"
)

func TestNew_CamposFijosDeServicio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "pos-backoffice",
		Output:  &buf,
	})

	log.Info().Str("tz", "Asia/Manila").Msg("iniciando aplicación")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"pos-backoffice"`)
	assert.Contains(t, out, `"env":"production"`)
	assert.Contains(t, out, `"tz":"Asia/Manila"`)
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("no debería salir")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}
