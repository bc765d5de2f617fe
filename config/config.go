package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	MysqlDSN   string
	JWTSecret  string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	RateLimit  float64
	RateBurst  int
	IsProd     bool
}

// Load reads .env if present, then the environment, falling back to
// development defaults.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rateLimit, _ := strconv.ParseFloat(getEnv("RATE_LIMIT", "20"), 64)
	rateBurst, _ := strconv.Atoi(getEnv("RATE_BURST", "40"))

	return &Config{
		ServerAddr: ":" + getEnv("PORT", "8080"),
		MysqlDSN:   getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/playhub?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:  getEnv("JWT_SECRET", "playhub-secret-key-change-in-production"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RedisPass:  getEnv("REDIS_PASS", ""),
		RedisDB:    redisDB,
		RateLimit:  rateLimit,
		RateBurst:  rateBurst,
		IsProd:     getEnv("IS_PROD", "") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
