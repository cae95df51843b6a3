package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables named by the
// `env` struct tags. A .env file in the working directory is loaded first if
// it exists; variables already set in the process environment win over it.
// Unset variables leave the current values untouched.
//
// Panics on malformed values, matching the JSON and flag loaders.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
