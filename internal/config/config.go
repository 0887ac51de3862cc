package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the backend base URL used when nothing else is configured.
const DefaultAPIURL = "http://127.0.0.1:8000/api"

type Config struct {
	API     APIConfig     `yaml:"api"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Cache   CacheConfig   `yaml:"cache"`
}

type APIConfig struct {
	URL     string `yaml:"url" env:"VESTR_API_URL"`
	Timeout string `yaml:"timeout" env:"VESTR_API_TIMEOUT"`
}

// RedisConfig enables the shared session store. An empty Addr keeps sessions in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"VESTR_REDIS_ADDR"`
	Password string `yaml:"password" env:"VESTR_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"VESTR_REDIS_DB"`
	TTL      string `yaml:"ttl" env:"VESTR_SESSION_TTL"`
	Profile  string `yaml:"profile" env:"VESTR_SESSION_PROFILE"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"VESTR_LOG_LEVEL"`
	Format string `yaml:"format" env:"VESTR_LOG_FORMAT"`
}

// CacheConfig controls how long quiz questions are reused before refetching.
// A TTL of "0" disables the cache.
type CacheConfig struct {
	TTL string `yaml:"ttl" env:"VESTR_QUESTION_CACHE_TTL"`
}

type DisplayConfig struct {
	Locale string `yaml:"locale" env:"VESTR_LOCALE"`
}

// Load reads YAML config from path, then applies .env and environment overrides.
// A missing file is not an error; defaults fill whatever is left unset.
func Load(path string) (Config, error) {
	cfg := Config{}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.Redis.Profile == "" {
		c.Redis.Profile = "default"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Display.Locale == "" {
		c.Display.Locale = "en"
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
