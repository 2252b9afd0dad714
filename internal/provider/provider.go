// Package provider builds the single ADSMedia client a process uses from
// loaded configuration.
package provider

import (
	"fmt"
	"os"
	"strings"

	"github.com/adsmedia/mailbridge/internal/config"
	adsmedia "github.com/adsmedia/mailbridge/sdk/go"
)

const (
	// APIKeyConfigKey is the configuration key checked first.
	APIKeyConfigKey = "adsmedia.api_key"

	// APIKeyEnv is the environment variable used when no key is configured.
	APIKeyEnv = "ADSMEDIA_API_KEY"
)

// ConfigurationError reports a required setting that could not be resolved.
type ConfigurationError struct {
	Key string
	Env string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ADSMedia API key not configured: set %q or the %s environment variable", e.Key, e.Env)
}

// ResolveAPIKey returns the configured key, else the value of APIKeyEnv as
// reported by getenv. Blank values count as unset.
func ResolveAPIKey(configured string, getenv func(string) string) (string, error) {
	if key := strings.TrimSpace(configured); key != "" {
		return key, nil
	}
	if getenv != nil {
		if key := strings.TrimSpace(getenv(APIKeyEnv)); key != "" {
			return key, nil
		}
	}
	return "", &ConfigurationError{Key: APIKeyConfigKey, Env: APIKeyEnv}
}

// NewClient resolves the API key against the process environment and
// constructs the client.
func NewClient(cfg config.ADSMediaConfig) (*adsmedia.Client, error) {
	return NewClientWithEnv(cfg, os.Getenv)
}

// NewClientWithEnv is NewClient with an injectable environment lookup.
func NewClientWithEnv(cfg config.ADSMediaConfig, getenv func(string) string) (*adsmedia.Client, error) {
	key, err := ResolveAPIKey(cfg.APIKey, getenv)
	if err != nil {
		return nil, err
	}

	client, err := adsmedia.NewClient(adsmedia.Config{
		APIKey:          key,
		BaseURL:         cfg.BaseURL,
		DefaultFromName: cfg.FromName,
		Timeout:         cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ADSMedia client: %w", err)
	}
	return client, nil
}
