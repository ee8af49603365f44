// Package config loads runtime settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey           string
	BaseURL          string
	ModelName        string
	DatabasePath     string
	CatalogFile      string
	SystemPromptFile string
}

func getEnv(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// Load reads .env if present, then resolves all settings from the
// environment. Missing keys fall back to defaults; the API key has no
// default and may legitimately be empty for local endpoints.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:           getEnv("OPENAI_API_KEY", ""),
		BaseURL:          getEnv("OPENAI_BASE_URL", ""),
		ModelName:        getEnv("OPENAI_MODEL_NAME", "gpt-4o"),
		DatabasePath:     getEnv("HOTEL_DB_PATH", "hotel_agent.db"),
		CatalogFile:      getEnv("HOTEL_CATALOG_FILE", ""),
		SystemPromptFile: getEnv("SYSTEM_PROMPT_FILE", ""),
	}
}
