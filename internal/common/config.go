package common

import (
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Ingest     IngestConfig
	Heuristics HeuristicsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// IngestConfig holds batch ingestion configuration
type IngestConfig struct {
	RequestsDir string
	SkipHidden  bool
	Workers     int
}

// HeuristicsConfig holds the tunable extraction defaults. The no-amount
// fallbacks are intentionally path-dependent: the offline batch path assumes
// a smaller placeholder ask than the live upload path.
type HeuristicsConfig struct {
	BatchFallbackCents   int64    `yaml:"batch_fallback_cents"`
	UploadFallbackCents  int64    `yaml:"upload_fallback_cents"`
	RecoveredAmountCents int64    `yaml:"recovered_amount_cents"`
	SubmitterTokens      []string `yaml:"submitter_tokens"`
	DistrictKeywords     []string `yaml:"district_keywords"`
	DistrictLabel        string   `yaml:"district_label"`
	StatewideLabel       string   `yaml:"statewide_label"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", "file:ndaa_requests.db?cache=shared"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Ingest: IngestConfig{
			RequestsDir: getEnv("REQUESTS_DIR", ""),
			SkipHidden:  true,
			Workers:     getEnvAsInt("INGEST_WORKERS", 4),
		},
		Heuristics: DefaultHeuristics(),
	}
}

// DefaultHeuristics returns the built-in extraction defaults.
func DefaultHeuristics() HeuristicsConfig {
	return HeuristicsConfig{
		BatchFallbackCents:   2_500_000_00, // $2.5M, offline batch path
		UploadFallbackCents:  5_000_000_00, // $5M, live upload path
		RecoveredAmountCents: 5_000_000_00,
		SubmitterTokens: []string{
			"rep. cory mills",
			"rep. mills",
			"cory mills",
			"mills",
			"smack",
		},
		DistrictKeywords: []string{"orlando", "district 7", "fl-07"},
		DistrictLabel:    "District 07 (Orlando Region)",
		StatewideLabel:   "Statewide/National Impact",
	}
}

// LoadHeuristicsFile overlays heuristics from a YAML file onto the defaults.
func LoadHeuristicsFile(path string) (HeuristicsConfig, error) {
	cfg := DefaultHeuristics()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, WrapError(err, "read heuristics file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, WrapError(err, "parse heuristics file")
	}
	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Heuristics.BatchFallbackCents < 0 || c.Heuristics.UploadFallbackCents < 0 {
		return NewAppError("CONFIG_ERROR", "fallback amounts must be non-negative", ErrInvalidInput)
	}
	return nil
}
