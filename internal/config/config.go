package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Registry  RegistryConfig
	Inference InferenceConfig
	Postgres  PostgresConfig
	Settings  SettingsConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type RegistryConfig struct {
	Path  string
	Watch bool
}

type InferenceConfig struct {
	Timeout time.Duration
}

type PostgresConfig struct {
	Enabled bool
	DSN     string
}

type SettingsConfig struct {
	Path string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("REGISTRY_PATH", "models/registry.json")
	v.SetDefault("REGISTRY_WATCH", false)
	v.SetDefault("INFERENCE_TIMEOUT", "5s")
	v.SetDefault("POSTGRES_ENABLED", false)
	v.SetDefault("POSTGRES_DSN", "postgres://localhost:5432/predictions")
	v.SetDefault("SETTINGS_PATH", "config/settings.yaml")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("INFERENCE_TIMEOUT"))
	if err != nil {
		timeout = 5 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Registry: RegistryConfig{
			Path:  v.GetString("REGISTRY_PATH"),
			Watch: v.GetBool("REGISTRY_WATCH"),
		},
		Inference: InferenceConfig{
			Timeout: timeout,
		},
		Postgres: PostgresConfig{
			Enabled: v.GetBool("POSTGRES_ENABLED"),
			DSN:     v.GetString("POSTGRES_DSN"),
		},
		Settings: SettingsConfig{
			Path: v.GetString("SETTINGS_PATH"),
		},
	}

	return cfg, nil
}
