package config_test

import (
	"testing"
	"time"

	"github.com/emvolvovsky-bot/PetMatch/internal/config"
	"github.com/emvolvovsky-bot/PetMatch/internal/validate"
)

// clearEnv pins every variable Load reads so a test never inherits
// values from the surrounding process.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"PETSYNC_BASE_URL",
		"PETSYNC_API_KEY",
		"PETSYNC_OUTPUT_PATH",
		"PETSYNC_TIMEOUT",
		"PETSYNC_MAX_RETRIES",
		"PETSYNC_USER_AGENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")

	cfg, err := config.Load("1.2.3")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, config.DefaultBaseURL)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "test-key")
	}
	if cfg.OutputPath != config.DefaultOutputPath {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, config.DefaultOutputPath)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
	if cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", cfg.MaxRetries)
	}
	if cfg.UserAgent != "petsync/1.2.3" {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, "petsync/1.2.3")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_BASE_URL", "http://localhost:9999")
	t.Setenv("PETSYNC_API_KEY", "other-key")
	t.Setenv("PETSYNC_OUTPUT_PATH", "/tmp/pets.csv")
	t.Setenv("PETSYNC_TIMEOUT", "30s")
	t.Setenv("PETSYNC_MAX_RETRIES", "3")
	t.Setenv("PETSYNC_USER_AGENT", "custom-agent/2.0")

	cfg, err := config.Load("1.2.3")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
	if cfg.OutputPath != "/tmp/pets.csv" {
		t.Errorf("OutputPath = %q, want override", cfg.OutputPath)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q, want override", cfg.UserAgent)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}

	if !validate.IsFieldErrors(err) {
		t.Fatalf("expected FieldErrors, got: %v", err)
	}

	fieldErrs := validate.GetFieldErrors(err)
	if _, found := fieldErrs.Fields()["api_key"]; !found {
		t.Errorf("expected api_key violation, got: %v", fieldErrs.Fields())
	}
}

func TestLoad_BadBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")
	t.Setenv("PETSYNC_BASE_URL", "not a url")

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for malformed base url")
	}

	if !validate.IsFieldErrors(err) {
		t.Fatalf("expected FieldErrors, got: %v", err)
	}

	fieldErrs := validate.GetFieldErrors(err)
	if _, found := fieldErrs.Fields()["base_url"]; !found {
		t.Errorf("expected base_url violation, got: %v", fieldErrs.Fields())
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")
	t.Setenv("PETSYNC_TIMEOUT", "ten seconds")

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestLoad_NegativeTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")
	t.Setenv("PETSYNC_TIMEOUT", "-5s")

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestLoad_BadMaxRetries(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")
	t.Setenv("PETSYNC_MAX_RETRIES", "three")

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for unparseable max retries")
	}
}

func TestLoad_NegativeMaxRetries(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETSYNC_API_KEY", "test-key")
	t.Setenv("PETSYNC_MAX_RETRIES", "-1")

	_, err := config.Load("1.2.3")
	if err == nil {
		t.Fatal("expected error for negative max retries")
	}
}
