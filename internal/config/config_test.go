package config

import (
	"errors"
	"testing"

	"patient-record-service/internal/fhir/mappers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	for _, key := range []string{"SERVICE_NAME", "FHIR_VERSION", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "patient-record-service", cfg.ServiceName)
	assert.Equal(t, "STU3", cfg.FHIRVersion)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("SERVICE_NAME", "patient-converter")
	t.Setenv("FHIR_VERSION", "DSTU2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "patient-converter", cfg.ServiceName)
	assert.Equal(t, "DSTU2", cfg.FHIRVersion)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_UnsupportedFHIRVersion(t *testing.T) {
	t.Setenv("FHIR_VERSION", "R4")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, mappers.ErrUnsupportedFHIRVersion))
}
