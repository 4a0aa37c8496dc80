package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"coinflip-casino-backend/internal/models"
)

type Config struct {
	Env  string
	Port string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret string
	APIKey    string
	OracleKey string

	// OperatorAccount is the single identity allowed to withdraw surplus.
	OperatorAccount int64

	MinBet      int64
	MaxBet      int64
	HouseEdgeBP int64
	OracleFee   int64
	OracleDelay time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		RedisURL:  getEnv("REDIS_URL", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
		APIKey:    getEnv("API_KEY", "dev-api-key"),
		OracleKey: getEnv("ORACLE_KEY", "dev-oracle-key"),

		OperatorAccount: getEnvInt64("OPERATOR_ACCOUNT", 1),

		MinBet:      getEnvInt64("MIN_BET", models.DefaultMinBet),
		MaxBet:      getEnvInt64("MAX_BET", models.DefaultMaxBet),
		HouseEdgeBP: getEnvInt64("HOUSE_EDGE_BP", models.DefaultHouseEdgeBP),
		OracleFee:   getEnvInt64("ORACLE_FEE", models.DefaultOracleFee),
		OracleDelay: getEnvDuration("ORACLE_DELAY", 2*time.Second),
	}

	if cfg.Env == "production" {
		if os.Getenv("JWT_SECRET") == "" || os.Getenv("ORACLE_KEY") == "" {
			return nil, fmt.Errorf("JWT_SECRET and ORACLE_KEY are required in production")
		}
	}
	if cfg.MinBet <= 0 || cfg.MaxBet < cfg.MinBet {
		return nil, fmt.Errorf("invalid bet bounds: min %d, max %d", cfg.MinBet, cfg.MaxBet)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
