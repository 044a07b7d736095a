package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application. Credentials are supplied
// strictly via the process environment; absence of a credential disables the
// corresponding feature per request rather than failing startup.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Upstream chat-completion endpoint
	OpenRouterAPIKey string        `envconfig:"OPENROUTER_API_KEY"`
	OpenRouterAPIURL string        `envconfig:"OPENROUTER_API_URL" default:"https://api.openrouter.ai/api/v1/chat/completions"`
	OpenRouterModel  string        `envconfig:"OPENROUTER_MODEL" default:"mistralai/mistral-7b-instruct"`
	LLMTimeout       time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`

	// Persistence store. Empty disables history and favorites.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// Load creates a Config from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	return &cfg, nil
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}
