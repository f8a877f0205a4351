package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration, read once at startup.
type Config struct {
	Port           string `mapstructure:"PORT"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	Env            string `mapstructure:"APP_ENV"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
}

// Load reads configuration from a .env file and environment variables.
func Load() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("SQLITE_PATH", "./gameshelf.db")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("JWT_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// Development reports whether the process runs in development mode.
// Development mode lowers the log level and lets 500 responses carry
// error detail.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Addr is the listen address derived from the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Origins returns the allowed CORS origins as a list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
