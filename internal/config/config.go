package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Battle BattleConfig
	Data   DataConfig
}

// RedisConfig holds Redis-specific configuration. An empty URL means in-memory storage.
type RedisConfig struct {
	URL string
}

// Enabled reports whether a Redis URL was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// BattleConfig tunes the engine and the battle service
type BattleConfig struct {
	MaxRounds        int
	BatchConcurrency int
	HistoryLimit     int
}

// DataConfig points at optional YAML data files
type DataConfig struct {
	TraitCatalogPath string // Optional: overrides the embedded trait catalog
	ContestantsPath  string // Roster used by the debug tools
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Battle: BattleConfig{
			MaxRounds:        getEnvAsIntOrDefault("BATTLE_MAX_ROUNDS", 10),
			BatchConcurrency: getEnvAsIntOrDefault("BATTLE_BATCH_CONCURRENCY", 4),
			HistoryLimit:     getEnvAsIntOrDefault("BATTLE_HISTORY_LIMIT", 10),
		},
		Data: DataConfig{
			TraitCatalogPath: os.Getenv("TRAIT_CATALOG_PATH"),
			ContestantsPath:  getEnvOrDefault("CONTESTANTS_PATH", "contestants.yaml"),
		},
	}

	// Validate ranges
	if cfg.Battle.MaxRounds < 1 {
		return nil, fmt.Errorf("BATTLE_MAX_ROUNDS must be at least 1, got %d", cfg.Battle.MaxRounds)
	}
	if cfg.Battle.BatchConcurrency < 1 {
		return nil, fmt.Errorf("BATTLE_BATCH_CONCURRENCY must be at least 1, got %d", cfg.Battle.BatchConcurrency)
	}
	if cfg.Battle.HistoryLimit < 1 {
		return nil, fmt.Errorf("BATTLE_HISTORY_LIMIT must be at least 1, got %d", cfg.Battle.HistoryLimit)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
