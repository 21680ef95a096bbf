// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string
	DBPath        string
	GitHubToken   string
	GitHubAPIURL  string
	SessionTTL    time.Duration
	RecentLookups int
}

// HasGitHubToken returns true when an API token is configured. Without one,
// repository listings are requested unauthenticated.
func (c *Config) HasGitHubToken() bool {
	return c.GitHubToken != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// Variables are first read from an optional dotenv file (REPOCANVAS_ENV_FILE,
// default ".env"); values already present in the environment win.
// All variables are optional: REPOCANVAS_LISTEN_ADDR (127.0.0.1:8080),
// REPOCANVAS_DB_PATH (repocanvas.db), REPOCANVAS_GITHUB_TOKEN (empty),
// REPOCANVAS_GITHUB_API_URL (public API), REPOCANVAS_SESSION_TTL (30m),
// REPOCANVAS_RECENT_LOOKUPS (8).
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	sessionTTL := 30 * time.Minute
	if v, ok := os.LookupEnv("REPOCANVAS_SESSION_TTL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REPOCANVAS_SESSION_TTL has invalid duration %q: %w", v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("REPOCANVAS_SESSION_TTL must not be negative, got %s", parsed)
		}
		sessionTTL = parsed
	}

	recent := 8
	if v, ok := os.LookupEnv("REPOCANVAS_RECENT_LOOKUPS"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("REPOCANVAS_RECENT_LOOKUPS must be a non-negative integer, got %q", v)
		}
		recent = parsed
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("REPOCANVAS_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "repocanvas.db"
	if v, ok := os.LookupEnv("REPOCANVAS_DB_PATH"); ok {
		dbPath = v
	}

	return &Config{
		ListenAddr:    listenAddr,
		DBPath:        dbPath,
		GitHubToken:   os.Getenv("REPOCANVAS_GITHUB_TOKEN"),
		GitHubAPIURL:  os.Getenv("REPOCANVAS_GITHUB_API_URL"),
		SessionTTL:    sessionTTL,
		RecentLookups: recent,
	}, nil
}

// loadEnvFile applies the dotenv file if it exists. A missing file is not an error.
func loadEnvFile() error {
	path := ".env"
	if v, ok := os.LookupEnv("REPOCANVAS_ENV_FILE"); ok && v != "" {
		path = v
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
