package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel           int
	LogTimeFormat      string
	DBPath             string
	Workers            int
	Locale             string
	StreetRadiusMeters float64
	PostgresDSN        string
}

// New reads an optional .env and config.yaml from the working directory. environment variables
// override both.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("LOG_LEVEL", 0)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("DB_PATH", "gazetteer.db")
	viper.SetDefault("WORKERS", runtime.NumCPU())
	viper.SetDefault("LOCALE", "")
	viper.SetDefault("STREET_RADIUS_METERS", 250.0)
	viper.SetDefault("POSTGRES_DSN", "")

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{
		LogLevel:           viper.GetInt("LOG_LEVEL"),
		LogTimeFormat:      viper.GetString("LOG_TIME_FORMAT"),
		DBPath:             viper.GetString("DB_PATH"),
		Workers:            viper.GetInt("WORKERS"),
		Locale:             viper.GetString("LOCALE"),
		StreetRadiusMeters: viper.GetFloat64("STREET_RADIUS_METERS"),
		PostgresDSN:        viper.GetString("POSTGRES_DSN"),
	}
	return config, nil
}
