package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Host     string
	Port     string
	LogLevel string
	// LogDir receives one access log per game. Empty disables it.
	LogDir string

	Author string
	Color  string
	Head   string
	Tail   string

	FoodHealthLimit   int
	Seed              int64
	ConservativeTails bool
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:     getEnv("HOST", "0.0.0.0"),
		Port:     getEnv("PORT", "8000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDir:   os.Getenv("LOG_DIR"),
		Author:   os.Getenv("BATTLESNAKE_AUTHOR"),
		Color:    getEnv("BATTLESNAKE_COLOR", "#888888"),
		Head:     getEnv("BATTLESNAKE_HEAD", "default"),
		Tail:     getEnv("BATTLESNAKE_TAIL", "default"),
	}

	limit, err := strconv.Atoi(getEnv("FOOD_HEALTH_LIMIT", "0"))
	if err != nil {
		return nil, fmt.Errorf("FOOD_HEALTH_LIMIT: %w", err)
	}
	cfg.FoodHealthLimit = limit

	seed, err := strconv.ParseInt(getEnv("SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SEED: %w", err)
	}
	cfg.Seed = seed

	tails, err := strconv.ParseBool(getEnv("CONSERVATIVE_TAILS", "false"))
	if err != nil {
		return nil, fmt.Errorf("CONSERVATIVE_TAILS: %w", err)
	}
	cfg.ConservativeTails = tails

	return cfg, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
