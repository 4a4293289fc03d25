package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	RedisURL      string
	RedisPassword string
	RedisDB       int

	AnalysisCacheTTL time.Duration
	RetentionDays    int
	CleanupInterval  time.Duration
	HumanFirst       *bool
}

var AppConfig *Config

func LoadConfig() *Config {
	// Storage, both optional
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	redisDB := GetEnvAsInt("REDIS_DB", 0)

	// Analysis
	cacheTTLHours := GetEnvAsPositiveInt("ANALYSIS_CACHE_TTL_HOURS", 24)
	retentionDays := GetEnvAsPositiveInt("ANALYSIS_RETENTION_DAYS", 30)
	cleanupIntervalMin := GetEnvAsPositiveInt("CLEANUP_INTERVAL_MINUTES", 60)

	var humanFirst *bool
	if os.Getenv("HUMAN_FIRST") != "" {
		v := GetEnvAsBool("HUMAN_FIRST", true)
		humanFirst = &v
	}

	AppConfig = &Config{
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		RedisDB:              redisDB,
		AnalysisCacheTTL:     time.Duration(cacheTTLHours) * time.Hour,
		RetentionDays:        retentionDays,
		CleanupInterval:      time.Duration(cleanupIntervalMin) * time.Minute,
		HumanFirst:           humanFirst,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for values that must be above zero.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Printf("Non-positive value for %s: %d, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsBool also accepts yes/no and y/n.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch valueStr {
	case "":
		return defaultValue
	case "yes", "y":
		return true
	case "no", "n":
		return false
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
