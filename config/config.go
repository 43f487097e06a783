// Package config resolves provider clients from names and loads environment
// configuration. API keys are validated at the point of use, so an unused
// provider's missing key never blocks startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/providers"
	"github.com/joho/godotenv"
)

// ConfigurationError indicates a provider was requested whose API key is not
// set in the environment.
type ConfigurationError struct {
	Provider string
	EnvKey   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %q requires %s to be set", e.Provider, e.EnvKey)
}

// LoadEnv loads variables from the given dotenv file into the process
// environment. An empty path means "./.env". A missing file is not an error;
// keys may come from the environment directly.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// GetModel returns a client for the named provider. An empty model selects
// the provider's default model.
func GetModel(provider, model string) (crosscheck.LLM, error) {
	entry, ok := providers.Get(provider)
	if !ok {
		return nil, fmt.Errorf("unsupported provider %q (available: %s)",
			provider, strings.Join(providers.Names(), ", "))
	}
	if entry.EnvKey != "" && os.Getenv(entry.EnvKey) == "" {
		return nil, &ConfigurationError{Provider: provider, EnvKey: entry.EnvKey}
	}
	return entry.Factory(model), nil
}
