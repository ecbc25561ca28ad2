package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultAppEnv        = "dev"
	defaultDBPath        = "./dev.db"
	defaultPort          = "8080"
	defaultMigrationsDir = "migrations"
	defaultMaxScenarios  = 3
	defaultLogLevel      = "info"
	defaultCORSOrigins   = "*"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AppEnv             string `mapstructure:"app_env"`
	DBPath             string `mapstructure:"db_path"`
	Port               string `mapstructure:"port"`
	MigrationsDir      string `mapstructure:"migrations_dir"`
	MaxScenarios       int    `mapstructure:"max_scenarios"`
	LogLevel           string `mapstructure:"log_level"`
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

// Load reads .env (when present) and the environment and returns a populated Config.
func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("app_env", defaultAppEnv)
	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("port", defaultPort)
	v.SetDefault("migrations_dir", defaultMigrationsDir)
	v.SetDefault("max_scenarios", defaultMaxScenarios)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("cors_allowed_origins", defaultCORSOrigins)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.MaxScenarios < 1 {
		return Config{}, fmt.Errorf("MAX_SCENARIOS must be at least 1, got %d", cfg.MaxScenarios)
	}

	return cfg, nil
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
