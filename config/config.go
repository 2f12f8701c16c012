package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "3000"

// Load reads an optional .env file into the environment. The server runs
// fine without one; every setting below has a default.
func Load() {
	_ = godotenv.Load()
}

// Port returns the listen port, overridable via PORT.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return defaultPort
}
