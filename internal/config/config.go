package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ServerHost         string
	ServerPort         string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	DBPoolSize         int64
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDatabase      int64
	TokenTTL           int64 // Bearer token TTL in seconds
	RequestTimeout     int64 // Per-request deadline in seconds
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                  // Default development
		LogLevel:           getLogLevel(),                                     // Default INFO
		ServerHost:         getEnv("SERVER_HOST", "0.0.0.0"),                  // Default all interfaces
		ServerPort:         getEnv("SERVER_PORT", "8080"),                     // Default 8080
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                   // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),            // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "userhub_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "userhub_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "userhub_db"),       // Default database name
		DBPoolSize:         getEnvAsInt64("DB_POOL_SIZE", 5),                  // Default 5 connections
		RedisHost:          getEnv("REDIS_HOST", "redis"),                     // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                 // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                      // Default empty
		RedisDatabase:      getEnvAsInt64("REDIS_DATABASE", 0),                // Default 0
		TokenTTL:           getEnvAsInt64("TOKEN_TTL", 86400),                 // Default 24 hours
		RequestTimeout:     getEnvAsInt64("REQUEST_TIMEOUT", 10),              // Default 10 seconds
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
