package config

import (
	"os"
	"strings"
)

const (
	defaultDevBaseURL = "http://localhost:5000/api"
)

// Config menampung konfigurasi runtime gateway. Semua nilai diambil dari
// environment saat start; tidak ada override saat runtime.
type Config struct {
	Env         string
	Port        string
	APIBaseURL  string
	JWTSecret   string
	RedisAddr   string
	KafkaBroker string
}

func Load() Config {
	cfg := Config{
		Env:         strings.ToLower(os.Getenv("APP_ENV")),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	cfg.APIBaseURL = resolveBaseURL(cfg.Env)
	return cfg
}

// resolveBaseURL memilih base URL API eksternal: production memakai
// API_PROD_URL, selain itu API_BASE_URL (fallback ke default dev).
func resolveBaseURL(env string) string {
	if env == "production" {
		if v := os.Getenv("API_PROD_URL"); v != "" {
			return v
		}
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return defaultDevBaseURL
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
