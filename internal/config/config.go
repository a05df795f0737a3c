package config

import (
	"fmt"
	"os"

	"patient-record-service/internal/fhir/mappers"
)

// Config holds the configuration of the patient record tools.
type Config struct {
	ServiceName string
	FHIRVersion string

	Log struct {
		Level  string
		Format string
	}
}

// Load reads the configuration from environment variables, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServiceName = getEnv("SERVICE_NAME", "patient-record-service")
	cfg.FHIRVersion = getEnv("FHIR_VERSION", "STU3")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	if err := mappers.ValidateFHIRVersion(cfg.FHIRVersion); err != nil {
		return nil, fmt.Errorf("FHIR_VERSION: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
