package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set in environment variables")

type Config struct {
	DatabaseURL    string `yaml:"database_url"`
	Port           string `yaml:"port"`
	LogDir         string `yaml:"log_dir"`
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
	MinIOUseSSL    bool   `yaml:"minio_use_ssl"`
}

// LoadConfig reads the process configuration once at start-up. A .env file in
// the working directory is loaded first if present, then the optional YAML
// file named by CONFIG_FILE. Environment variables always win.
func LoadConfig() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := Config{
		Port:        "4000",
		LogDir:      "./logs",
		MinIOBucket: "notes-exports",
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogDir = getEnv("LOG_DIR", cfg.LogDir)
	cfg.MinIOEndpoint = getEnv("MINIO_ENDPOINT", cfg.MinIOEndpoint)
	cfg.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", cfg.MinIOAccessKey)
	cfg.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", cfg.MinIOSecretKey)
	cfg.MinIOBucket = getEnv("MINIO_BUCKET", cfg.MinIOBucket)
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MINIO_USE_SSL %q: %w", v, err)
		}
		cfg.MinIOUseSSL = useSSL
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// ExportEnabled reports whether object storage is configured for snapshots.
func (c Config) ExportEnabled() bool {
	return c.MinIOEndpoint != ""
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
