package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/oaikit"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	// Credentials
	AccessToken    string
	OrganizationID string

	// Endpoint
	URIBase    string
	APIType    string
	APIVersion string

	RequestTimeout time.Duration
	LogErrors      bool
	LogLevel       string // debug, info, warn, error

	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090".
	MetricsAddr string

	Model string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	cfg := &Config{
		AccessToken:    os.Getenv("OPENAI_ACCESS_TOKEN"),
		OrganizationID: os.Getenv("OPENAI_ORGANIZATION_ID"),
		URIBase:        getEnvOrDefault("OPENAI_URI_BASE", oaikit.DefaultURIBase),
		APIType:        os.Getenv("OPENAI_API_TYPE"),
		APIVersion:     getEnvOrDefault("OPENAI_API_VERSION", oaikit.DefaultAPIVersion),
		RequestTimeout: getEnvDurationOrDefault("OPENAI_REQUEST_TIMEOUT", oaikit.DefaultRequestTimeout),
		LogErrors:      getEnvBoolOrDefault("OPENAI_LOG_ERRORS", true),
		LogLevel:       getEnvOrDefault("OAIKIT_LOG_LEVEL", "info"),
		MetricsAddr:    os.Getenv("OAIKIT_METRICS_ADDR"),
		Model:          getEnvOrDefault("OAIKIT_MODEL", "gpt-4o-mini"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("OPENAI_ACCESS_TOKEN is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("OPENAI_REQUEST_TIMEOUT must be positive")
	}

	apiType := oaikit.APIType(c.APIType)
	switch {
	case apiType.IsAzure():
		if c.APIVersion == oaikit.DefaultAPIVersion {
			return fmt.Errorf("OPENAI_API_VERSION must name an Azure api-version (e.g. 2024-02-01)")
		}
	case c.APIType == "", strings.EqualFold(c.APIType, string(oaikit.APITypeOpenAI)):
	default:
		return fmt.Errorf("unknown OPENAI_API_TYPE: %s (must be openai or azure)", c.APIType)
	}

	return nil
}

// Apply copies c into the process-wide client defaults.
func (c *Config) Apply() error {
	return oaikit.Configure(func(d *oaikit.Configuration) error {
		d.AccessToken = c.AccessToken
		d.OrganizationID = c.OrganizationID
		d.URIBase = c.URIBase
		d.APIType = oaikit.APIType(c.APIType)
		d.APIVersion = c.APIVersion
		d.RequestTimeout = c.RequestTimeout
		d.LogErrors = c.LogErrors
		return nil
	})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
