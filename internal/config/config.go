package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"porra/internal/constants"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration
	DBPath     string
	LogLevel   string
}

// fileConfig is the optional YAML file pointed to by PORRA_CONFIG.
// Environment variables win over it.
type fileConfig struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	file, err := readFile(os.Getenv("PORRA_CONFIG"))
	if err != nil {
		return nil, err
	}

	timeout := constants.APITimeout
	if raw := getEnv("PORRA_API_TIMEOUT", file.API.Timeout); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORRA_API_TIMEOUT %q: %w", raw, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("PORRA_API_TIMEOUT must be positive, got %s", timeout)
		}
	}

	cfg := &Config{
		APIBaseURL: strings.TrimRight(getEnv("PORRA_API_URL", or(file.API.BaseURL, constants.DefaultAPIBaseURL)), "/"),
		APITimeout: timeout,
		DBPath:     getEnv("PORRA_DB_PATH", or(file.DBPath, constants.DefaultDBPath)),
		LogLevel:   getEnv("LOG_LEVEL", or(file.LogLevel, "warn")),
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("PORRA_API_URL must be an absolute http(s) URL, got %q", cfg.APIBaseURL)
	}

	logger.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Dur("api_timeout", cfg.APITimeout).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, fmt.Errorf("config file %s does not exist", path)
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
