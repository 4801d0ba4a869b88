package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenvCandidates in priority order; the first listed wins on conflicts
var dotenvCandidates = []string{".env.local", ".env"}

// LoadDotEnv loads any .env files present and reports which ones it found.
// godotenv never overwrites variables that are already set, so real
// environment variables beat .env.local, which beats .env.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range dotenvCandidates {
		if _, err := os.Stat(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
