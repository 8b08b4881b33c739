package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host              string
	Port              string
	RedisURL          string
	JWTSecret         string
	TokenTTL          time.Duration
	WheelSegments     []int
	InitialSpins      int
	NutritionixAppID  string
	NutritionixAppKey string
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development.
	godotenv.Load()

	cfg := &Config{
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnv("PORT", "4000"),
		RedisURL:          os.Getenv("REDIS_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getDuration("TOKEN_TTL", 4*time.Hour),
		InitialSpins:      getInt("INITIAL_SPINS", 5),
		NutritionixAppID:  os.Getenv("NUTRITIONIX_APP_ID"),
		NutritionixAppKey: os.Getenv("NUTRITIONIX_APP_KEY"),
	}

	// Falling back to a baked-in secret would make every deployment's
	// tokens forgeable, so a missing secret is a startup error.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	segments, err := parseSegments(getEnv("WHEEL_SEGMENTS", "10,20,30,40,50,100"))
	if err != nil {
		return nil, err
	}
	cfg.WheelSegments = segments

	if cfg.InitialSpins < 0 {
		return nil, errors.New("INITIAL_SPINS must not be negative")
	}

	return cfg, nil
}

func parseSegments(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid WHEEL_SEGMENTS value %q: %v", part, err)
		}
		segments = append(segments, value)
	}
	if len(segments) == 0 {
		return nil, errors.New("WHEEL_SEGMENTS must list at least one segment")
	}
	return segments, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}
