package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	Development = "development"
	Testing     = "testing"
	Production  = "production"
)

var (
	ErrUnknownProfile = errors.New("unknown configuration profile")
	ErrMissingSetting = errors.New("missing required setting")
)

type Config struct {
	Profile string `mapstructure:"-"`
	Debug   bool   `mapstructure:"debug"`

	DatabaseURL string `mapstructure:"database_url"`
	RedisURL    string `mapstructure:"redis_url"`

	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		AccessTTL time.Duration `mapstructure:"access_ttl"`
	} `mapstructure:"jwt"`

	BcryptCost int    `mapstructure:"bcrypt_cost"`
	LogLevel   string `mapstructure:"log_level"`

	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

// envKeys maps config keys onto the environment variables that override them.
var envKeys = map[string]string{
	"database_url":   "DATABASE_URL",
	"redis_url":      "REDIS_URL",
	"jwt.secret_key": "JWT_SECRET_KEY",
	"jwt.access_ttl": "JWT_ACCESS_TTL",
	"bcrypt_cost":    "BCRYPT_COST",
	"log_level":      "LOG_LEVEL",
	"server.port":    "PORT",
	"debug":          "DEBUG",
}

func setDefaults(v *viper.Viper, profile string) error {
	v.SetDefault("server.port", "8080")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)

	switch profile {
	case Development:
		v.SetDefault("debug", true)
		v.SetDefault("log_level", "debug")
		v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)
	case Testing:
		v.SetDefault("debug", false)
		v.SetDefault("log_level", "warn")
		v.SetDefault("bcrypt_cost", bcrypt.MinCost)
	case Production:
		v.SetDefault("debug", false)
		v.SetDefault("log_level", "info")
		v.SetDefault("bcrypt_cost", 12)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	return nil
}

// Load builds a Config for the given profile. An empty profile selects
// development. Settings come from profile defaults, an optional config.yml in
// path, a .env file in path, and the process environment, in increasing order
// of precedence.
func Load(profile, path string) (*Config, error) {
	if profile == "" {
		profile = Development
	}
	if path == "" {
		path = "."
	}

	v := viper.New()
	if err := setDefaults(v, profile); err != nil {
		return nil, err
	}

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Variables already present in the environment win over the .env file.
	if err := godotenv.Load(strings.TrimSuffix(path, "/") + "/.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("unable to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.Profile = profile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL", ErrMissingSetting)
	}
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("%w: JWT_SECRET_KEY", ErrMissingSetting)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range", c.BcryptCost)
	}
	return nil
}
