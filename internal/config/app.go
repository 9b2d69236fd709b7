package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	OpenAI  OpenAIConfig
	Output  OutputConfig
	Charts  ChartsConfig
	LogMode string
}

type OutputConfig struct {
	Dir string
}

type ChartsConfig struct {
	Enabled   bool
	MaxCharts int
	FontPath  string
	Width     int
	Height    int
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		OpenAI: LoadOpenAIConfig(),
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "output"),
		},
		Charts: ChartsConfig{
			Enabled:   getEnvAsBool("CHARTS_ENABLED", true),
			MaxCharts: getEnvAsInt("CHARTS_MAX", 15),
			FontPath:  getEnv("CHART_FONT", ""),
			Width:     getEnvAsInt("CHART_WIDTH", 900),
			Height:    getEnvAsInt("CHART_HEIGHT", 600),
		},
		LogMode: getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
