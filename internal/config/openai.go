package config

import (
	"fmt"
)

type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// LoadOpenAIConfig reads the OpenAI settings from environment variables.
func LoadOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      getEnv("OPENAI_API_KEY", ""),
		Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 8000),
		Temperature: getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
	}
}

// Validate checks the configuration before any data is touched.
func (c *OpenAIConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive")
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2")
	}

	return nil
}
