package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"payment-reports-api/database"
)

type Config struct {
	Database database.DatabaseConfig
	Exchange ExchangeConfig
	Server   ServerConfig
	Redis    RedisConfig
}

type ExchangeConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	// URL of the shared rate store; empty disables it and rates are only
	// cached in-process.
	URL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		Database: database.DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		Exchange: ExchangeConfig{
			BaseURL: os.Getenv("NBP_API_URL"),
			Timeout: exchangeTimeout(),
		},
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = "http://api.nbp.pl"
		log.Printf("Warning: NBP_API_URL not set, using default: %s", cfg.Exchange.BaseURL)
	}
	if cfg.Redis.URL == "" {
		log.Printf("Warning: REDIS_URL not set, shared rate store disabled")
	}

	return cfg
}

func exchangeTimeout() time.Duration {
	raw := os.Getenv("EXCHANGE_TIMEOUT_SECONDS")
	if raw == "" {
		return 10 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Warning: invalid EXCHANGE_TIMEOUT_SECONDS %q, using 10s", raw)
		return 10 * time.Second
	}
	return time.Duration(seconds) * time.Second
}
