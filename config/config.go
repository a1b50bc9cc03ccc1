// Package config loads process configuration from the environment once at
// startup. Everything downstream receives an explicit Config instead of
// reading os.Getenv on its own.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mohvmedezzvt/task-manager/logging"
)

type Config struct {
	ServerPort  string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
}

// Load reads the optional .env file and resolves the configuration.
// MONGO_URI and JWT_SECRET have no sensible defaults and are required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Logger.Warnf("Event ID: ENV_FILE_MISSING, Description: No .env file loaded: %v", err)
	}

	cfg := &Config{
		ServerPort:  getEnv("PORT", "8000"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDBName: getEnv("MONGO_DB_NAME", "task-manager"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set in the environment variables")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set in the environment variables")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
