package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type ModelConfig struct {
	Name string
	Path string
}

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	Models       []ModelConfig
	DefaultModel string

	CORSAllowedOrigins []string

	DBDriver   string
	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
	DBPath     string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "geo-prediction-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("MODELS", "A=knn_model_A.json,B=knn_model_B.json")
	v.SetDefault("DEFAULT_MODEL", "A")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_PATH", "predictions.db")

	v.AutomaticEnv()
	// DEFAULT_MODEL= disables the single-model route.
	v.AllowEmptyEnv(true)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	models, err := ParseModels(v.GetString("MODELS"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		LogFile:            v.GetString("LOG_FILE"),
		LogMaxSizeMB:       v.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxBackups:      v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAgeDays:      v.GetInt("LOG_MAX_AGE_DAYS"),
		Models:             models,
		DefaultModel:       strings.TrimSpace(v.GetString("DEFAULT_MODEL")),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DBDriver:           strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		DBPath:             v.GetString("DATABASE_PATH"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// ParseModels reads an ordered, comma separated list of name=path pairs.
func ParseModels(raw string) ([]ModelConfig, error) {
	var models []ModelConfig
	seen := make(map[string]bool)

	for _, entry := range splitList(raw) {
		name, path, ok := strings.Cut(entry, "=")
		name, path = strings.TrimSpace(name), strings.TrimSpace(path)
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid MODELS entry %q, expected name=path", entry)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate model name %q in MODELS", name)
		}
		seen[name] = true

		models = append(models, ModelConfig{Name: name, Path: path})
	}

	if len(models) == 0 {
		return nil, errors.New("MODELS must name at least one model")
	}

	return models, nil
}

func (c *Config) validate() error {
	if c.DefaultModel != "" {
		found := false
		for _, m := range c.Models {
			if m.Name == c.DefaultModel {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("DEFAULT_MODEL %q is not listed in MODELS", c.DefaultModel)
		}
	}

	switch c.DBDriver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DBDriver)
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
