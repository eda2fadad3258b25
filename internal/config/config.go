package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"makeupstudio/internal/modules/pricing"
)

const (
	defaultListenAddr     = ":8080"
	defaultDatabaseURL    = "makeupstudio.db"
	defaultJWTAccessTTL   = "12h"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultNightStart     = "19:30"
	defaultNightEnd       = "06:00"
	defaultNightSurcharge = "50"
)

type RuntimeConfig struct {
	AppEnv       string
	ListenAddr   string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	Pricing      pricing.Config
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.Pricing.NightStart, err = parseClockEnv("NIGHT_START", defaultNightStart)
	if err != nil {
		return nil, err
	}
	cfg.Pricing.NightEnd, err = parseClockEnv("NIGHT_END", defaultNightEnd)
	if err != nil {
		return nil, err
	}
	cfg.Pricing.NightSurcharge, err = parseFloatEnv("NIGHT_SURCHARGE", defaultNightSurcharge)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("pricing config: night_start=%s night_end=%s night_surcharge=%.2f",
		getEnv("NIGHT_START", defaultNightStart),
		getEnv("NIGHT_END", defaultNightEnd),
		cfg.Pricing.NightSurcharge,
	)

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.Pricing.NightSurcharge < 0 {
		return fmt.Errorf("NIGHT_SURCHARGE must be >= 0")
	}

	if isProdLike(cfg.AppEnv) {
		if strings.TrimSpace(cfg.JWTSecret) == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

// parseClockEnv reads an "HH:MM" value as minutes from midnight.
func parseClockEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	m, ok := pricing.StartMinuteOfDay(value)
	if !ok {
		return 0, fmt.Errorf("invalid %s value %q: expected HH:MM", name, value)
	}
	return m, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
