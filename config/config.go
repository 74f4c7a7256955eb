package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	AllowedOrigins []string
	HTTPAddr       string

	SessionTTL    time.Duration
	CookieDomain  string
	SecureCookies bool

	ResendAPIKey     string
	ContactFromEmail string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowedOrigins:   splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		HTTPAddr:         os.Getenv("HTTP_ADDR"),
		SessionTTL:       7 * 24 * time.Hour,
		CookieDomain:     os.Getenv("COOKIE_DOMAIN"),
		SecureCookies:    os.Getenv("COOKIE_SECURE") != "false",
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ContactFromEmail: os.Getenv("CONTACT_FROM_EMAIL"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":3000"
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.SessionTTL = parsed
		}
	}
	return cfg
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"http://localhost:5173"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
