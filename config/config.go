package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all process-wide settings, loaded once at startup and
// injected into handlers and middleware at construction.
type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecret       string
	TokenTTLMinutes int
	FrontendURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            os.Getenv("PORT"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTLMinutes: 30,
		FrontendURL:     os.Getenv("FRONTEND_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
		}
		cfg.TokenTTLMinutes = minutes
	}

	return cfg, nil
}
