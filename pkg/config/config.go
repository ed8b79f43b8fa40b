package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries all runtime settings. It is built once in main and handed
// to the components that need it; there is no package-level state.
type Config struct {
	Env     string
	AppName string

	Data    DataConfig
	Exports ExportConfig
	Log     LogConfig
}

// DataConfig locates the persisted record files and bounds enrollment.
type DataConfig struct {
	Dir        string
	MaxCredits int
}

// ExportConfig controls where generated report files land.
type ExportConfig struct {
	Dir string
}

// LogConfig tunes logger construction.
type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.AppName = v.GetString("APP_NAME")

	cfg.Data = DataConfig{
		Dir:        v.GetString("DATA_DIR"),
		MaxCredits: v.GetInt("MAX_CREDITS"),
	}
	if cfg.Data.MaxCredits <= 0 {
		cfg.Data.MaxCredits = 20
	}

	cfg.Exports = ExportConfig{
		Dir: v.GetString("EXPORT_DIR"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("APP_NAME", "Campus Course & Records Manager (CCRM)")

	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("MAX_CREDITS", 20)

	v.SetDefault("EXPORT_DIR", "exports")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
