package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// BackendConfig contains connection options for the hiring backend API.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig contains connection options for the flash-message store.
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	FlashTTL time.Duration `mapstructure:"flash_ttl"`
}

// Addr builds a go-redis compatible address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", 60*time.Second)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.flash_ttl", 5*time.Minute)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"server.port":      "SERVER_PORT",
		"backend.base_url": "BACKEND_API_URL",
		"backend.timeout":  "BACKEND_TIMEOUT",
		"redis.host":       "REDIS_HOST",
		"redis.port":       "REDIS_PORT",
		"redis.flash_ttl":  "FLASH_TTL",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.Server.Port <= 0 {
		return errors.New("server port must be positive")
	}
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend base url is required")
	}
	parsed, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend base url %q is not a valid absolute url", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout <= 0 {
		return errors.New("backend timeout must be positive")
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.Redis.FlashTTL <= 0 {
		return errors.New("flash ttl must be positive")
	}
	return nil
}
