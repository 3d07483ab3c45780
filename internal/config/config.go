package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DatabaseURL string

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	tokenTTL := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		tokenTTL = parsed
	}

	cfg := &Config{
		ServerPort:  serverPort,
		DatabaseURL: databaseURL,
	}
	cfg.Auth.JWTSecret = jwtSecret
	cfg.Auth.TokenTTL = tokenTTL

	return cfg, nil
}
