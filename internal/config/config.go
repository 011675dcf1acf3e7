// Package config loads petsync settings from the environment.
//
// All variables are optional except PETSYNC_API_KEY:
//
//	PETSYNC_BASE_URL     distribution endpoint base URL (default https://petfinder-database-distributor.onrender.com)
//	PETSYNC_API_KEY      static API key sent as X-API-Key (required)
//	PETSYNC_OUTPUT_PATH  where the catalog file lands on disk (default pets.csv)
//	PETSYNC_TIMEOUT      overall request timeout as a Go duration (default 0, no timeout)
//	PETSYNC_MAX_RETRIES  extra attempts after a retryable failure (default 0, fire once)
//	PETSYNC_USER_AGENT   User-Agent header (default petsync/<version>)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emvolvovsky-bot/PetMatch/internal/validate"
)

// Defaults applied by [Load] when the corresponding variable is unset.
const (
	DefaultBaseURL    = "https://petfinder-database-distributor.onrender.com"
	DefaultOutputPath = "pets.csv"
)

// Config holds everything petsync needs to fetch the catalog. The API
// key is deliberately absent from the defaults so it can never end up
// compiled into a binary.
type Config struct {
	BaseURL    string        `json:"base_url" validate:"required,url"`
	APIKey     string        `json:"api_key" validate:"required"`
	OutputPath string        `json:"output_path" validate:"required"`
	Timeout    time.Duration `json:"timeout" validate:"min=0"`
	MaxRetries int           `json:"max_retries" validate:"min=0"`
	UserAgent  string        `json:"user_agent" validate:"required"`
}

// Load reads PETSYNC_* environment variables, applies defaults, and
// validates the result. version is stamped into the default User-Agent.
func Load(version string) (Config, error) {
	cfg := Config{
		BaseURL:    envOr("PETSYNC_BASE_URL", DefaultBaseURL),
		APIKey:     os.Getenv("PETSYNC_API_KEY"),
		OutputPath: envOr("PETSYNC_OUTPUT_PATH", DefaultOutputPath),
		UserAgent:  envOr("PETSYNC_USER_AGENT", "petsync/"+version),
	}

	if v := os.Getenv("PETSYNC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing PETSYNC_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("PETSYNC_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing PETSYNC_MAX_RETRIES: %w", err)
		}
		cfg.MaxRetries = n
	}

	if err := validate.Check(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
