package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	KafkaBrokers []string
	KafkaEnabled bool

	SnowflakeNode int64

	OTPMaxPerWindow int
	OTPWindow       time.Duration
	OTPCooldown     time.Duration
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
		JWTIssuer: getEnv("JWT_ISSUER", "cardlink"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		KafkaBrokers: getEnvSlice("KAFKA_BROKERS", []string{"kafka-service:9092"}),
		KafkaEnabled: getEnvBool("KAFKA_ENABLED", false),

		SnowflakeNode: getEnvInt64("SNOWFLAKE_NODE", 1),

		OTPMaxPerWindow: int(getEnvInt64("OTP_MAX_PER_WINDOW", 5)),
		OTPWindow:       getEnvDuration("OTP_WINDOW", 10*time.Minute),
		OTPCooldown:     getEnvDuration("OTP_COOLDOWN", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
