package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT" validate:"gt=0,lte=65535"`

	// Local snapshot area (session + cached credential)
	DataDir string `mapstructure:"DATA_DIR" validate:"required"`

	// Session cookie secret; generated when empty
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Optional authoritative metadata credential. Without it enrichment
	// degrades to the best-effort embed lookup.
	YouTubeAPIKey string `mapstructure:"YOUTUBE_API_KEY"`

	// Seed admin account
	AdminEmail string `mapstructure:"ADMIN_EMAIL" validate:"required,email"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("ADMIN_EMAIL", "admin@chuma.band")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Info("Loaded configuration", "port", cfg.WebServerPort, "data_dir", cfg.DataDir, "admin_email", cfg.AdminEmail, "has_api_key", cfg.YouTubeAPIKey != "")

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
