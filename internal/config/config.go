// ABOUTME: Centralized configuration for MomPrep
// ABOUTME: Loads from environment variables (and .env) with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the study tool
type Config struct {
	// Store settings
	Backend     string
	DBPath      string
	CharmHost   string
	CharmDBName string
	AutoSync    bool
	CacheTTL    time.Duration

	// LLM settings
	APIKey       string
	BaseURL      string
	ContentModel string
	ChatModel    string
	Timeout      time.Duration

	// PersistContent writes freshly generated nuggets back to the curriculum table
	PersistContent bool

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads .env (if present) and then configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Backend:        getEnv("MOMPREP_BACKEND", "sqlite"),
		DBPath:         os.Getenv("MOMPREP_DB_PATH"),
		CharmHost:      getEnv("CHARM_HOST", "charm.2389.dev"),
		CharmDBName:    getEnv("CHARM_DB", "momprep"),
		AutoSync:       getEnvBool("CHARM_AUTO_SYNC", true),
		CacheTTL:       getEnvDuration("MOMPREP_CACHE_TTL", 60*time.Second),
		APIKey:         getEnv("OPENAI_API_KEY", os.Getenv("GEMINI_API_KEY")),
		BaseURL:        os.Getenv("LLM_BASE_URL"),
		ContentModel:   getEnv("MOMPREP_CONTENT_MODEL", "gpt-4o"),
		ChatModel:      getEnv("MOMPREP_CHAT_MODEL", "gpt-4o-mini"),
		Timeout:        getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		PersistContent: getEnvBool("MOMPREP_PERSIST_CONTENT", false),
		LogLevel:       getEnv("MOMPREP_LOG_LEVEL", "warn"),
		LogFile:        os.Getenv("MOMPREP_LOG_FILE"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "sqlite", "charm", "memory":
	default:
		return fmt.Errorf("MOMPREP_BACKEND must be sqlite, charm or memory, got %q", c.Backend)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("MOMPREP_CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
