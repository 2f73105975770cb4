package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	Port        string

	JWTSecret string
	JWTTTL    time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string

	ImportFile string

	AdminUsername string
	AdminPassword string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Load reads the configuration from the environment. Only DATABASE_URL and
// JWT_SECRET are mandatory; everything else has a development default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           "3000",
		JWTTTL:         30 * time.Minute,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		AllowedOrigins: defaultOrigins,
		ImportFile:     "",
		AdminUsername:  "admin",
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if ttl := os.Getenv("JWT_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_MINUTES %q: %w", ttl, err)
		}
		cfg.JWTTTL = time.Duration(minutes) * time.Minute
	}

	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		parsed, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", rps, err)
		}
		cfg.RateLimitRPS = parsed
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		parsed, err := strconv.Atoi(burst)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", burst, err)
		}
		cfg.RateLimitBurst = parsed
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	}

	if file := os.Getenv("IMPORT_FILE"); file != "" {
		cfg.ImportFile = file
	}

	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		cfg.AdminUsername = username
	}
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
