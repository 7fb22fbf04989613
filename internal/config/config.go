package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	AppEnv                string        `mapstructure:"APP_ENV"`
	Port                  string        `mapstructure:"PORT"`
	DatabaseURL           string        `mapstructure:"DATABASE_URL"`
	JWTSecret             string        `mapstructure:"JWT_SECRET"`
	RequireValidToken     bool          `mapstructure:"AUTH_REQUIRE_VALID_TOKEN"`
	DefaultUserID         string        `mapstructure:"DEFAULT_USER_ID"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`
	DBLogLevel            string        `mapstructure:"DB_LOG_LEVEL"`
	ReadTimeout           time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout          time.Duration `mapstructure:"WRITE_TIMEOUT"`
	ShutdownTimeout       time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	RecommendationsPerRun int           `mapstructure:"RECOMMENDATIONS_PER_RUN"`
}

// keys lists every setting so AutomaticEnv can see variables that are not in
// the .env file. Unmarshal only considers keys viper already knows about.
var keys = map[string]any{
	"APP_ENV":                  "development",
	"PORT":                     "8080",
	"DATABASE_URL":             "",
	"JWT_SECRET":               "",
	"AUTH_REQUIRE_VALID_TOKEN": false,
	"DEFAULT_USER_ID":          "",
	"LOG_LEVEL":                "",
	"DB_LOG_LEVEL":             "warn",
	"READ_TIMEOUT":             "10s",
	"WRITE_TIMEOUT":            "10s",
	"SHUTDOWN_TIMEOUT":         "10s",
	"RECOMMENDATIONS_PER_RUN":  5,
}

// Load reads configuration from a .env file in dir (if present) and from the
// environment. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, def := range keys {
		v.SetDefault(key, def)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if _, err := c.DefaultCaller(); err != nil {
		return err
	}
	if c.RequireValidToken && c.JWTSecret == "" {
		return errors.New("AUTH_REQUIRE_VALID_TOKEN needs JWT_SECRET")
	}
	if c.RecommendationsPerRun < 1 {
		return errors.New("RECOMMENDATIONS_PER_RUN must be at least 1")
	}
	return nil
}

// DefaultCaller parses DEFAULT_USER_ID, the identity used for requests whose
// bearer token carries no verifiable subject.
func (c *Config) DefaultCaller() (uuid.UUID, error) {
	id, err := uuid.Parse(c.DefaultUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("DEFAULT_USER_ID must be a UUID: %w", err)
	}
	return id, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
