package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	HumanFirst    bool
	ColorMode     ColorMode
	LogFile       string
	RedisURL      string
	RedisPassword string
	RedisDB       int
	MoveCacheTTL  time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	colorMode := ColorMode(strings.ToLower(GetEnv("COLOR_MODE", string(ColorAuto))))
	switch colorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		log.Printf("[CONFIG] Unknown COLOR_MODE %q, using %q", colorMode, ColorAuto)
		colorMode = ColorAuto
	}

	AppConfig = &Config{
		HumanFirst:    GetEnvAsBool("HUMAN_FIRST", true),
		ColorMode:     colorMode,
		LogFile:       GetEnv("LOG_FILE", "connect4.log"),
		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),
		MoveCacheTTL:  time.Duration(GetEnvAsInt("MOVE_CACHE_TTL_HOURS", 168)) * time.Hour,
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
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
