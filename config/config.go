package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds process-level settings loaded from the environment.
type Config struct {
	Port            string
	MongoURI        string
	Database        string
	ImagesDir       string
	ShutdownTimeout time.Duration
}

const (
	defaultPort            = "3000"
	defaultDatabase        = "afterSchool"
	defaultImagesDir       = "images"
	defaultShutdownTimeout = 10 * time.Second
)

// Load reads configuration from the environment. MONGODB_CONNSTRING is the
// only required setting.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", defaultPort),
		MongoURI:        getEnv("MONGODB_CONNSTRING", ""),
		Database:        getEnv("MONGODB_DATABASE", defaultDatabase),
		ImagesDir:       getEnv("IMAGES_DIR", defaultImagesDir),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("cannot find connection string for DB in the environment")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
