// Package config loads runtime configuration from the environment,
// optionally seeded from a .env file in the working directory.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// keyPlaceholder is the common copy-paste placeholder; treating it as
// unset keeps a fresh checkout on the offline fallback path.
const keyPlaceholder = "YOUR_API_KEY"

type Config struct {
	GeminiAPIKey string
}

// Load reads configuration. A missing .env file is not an error: every
// setting here is optional and absence just selects degraded behavior.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "API_KEY"),
	}
}

// HasGeminiKey reports whether a usable credential is configured.
func (c Config) HasGeminiKey() bool {
	key := strings.TrimSpace(c.GeminiAPIKey)
	return key != "" && key != keyPlaceholder
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
