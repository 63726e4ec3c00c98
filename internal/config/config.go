package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseLogLevel string `mapstructure:"DATABASE_LOG_LEVEL"`
	ImageDir         string `mapstructure:"IMAGE_DIR"`
	MaxUploadSizeMB  int64  `mapstructure:"MAX_UPLOAD_SIZE_MB"`
	CORSOrigins      string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	SeedDatabase     bool   `mapstructure:"SEED_DATABASE"`
	GinMode          string `mapstructure:"GIN_MODE"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       ":8080",
	"DATABASE_DRIVER":      "sqlite",
	"DATABASE_URL":         "file:catalog.db?_pragma=foreign_keys(1)",
	"DATABASE_LOG_LEVEL":   "warn",
	"IMAGE_DIR":            "wwwroot/Images",
	"MAX_UPLOAD_SIZE_MB":   10,
	"CORS_ALLOWED_ORIGINS": "*",
	"SEED_DATABASE":        true,
	"GIN_MODE":             "debug",
}

// LoadConfig loads the configuration from a .env file in dir and environment variables.
// Environment variables win over the file.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas. A single "*" means any origin.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, part := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// MaxUploadBytes is the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

func (c *Config) validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive, got %d", c.MaxUploadSizeMB)
	}
	return nil
}
