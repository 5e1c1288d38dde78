package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// WhatsApp destination for composed appointment requests.
	WhatsAppNumber string

	// Phone validation: numbers are local subscriber numbers of
	// LocalNumberLength digits, optionally prefixed by CountryCode.
	CountryCode       string
	LocalNumberLength int

	// Category-specific required-field toggles. Plate and model ship
	// optional unless promoted here.
	RequireVehiclePlate  bool
	RequireVehicleModel  bool
	RequireEquipmentType bool

	// When true, a preferred time outside business hours fails validation
	// instead of producing an advisory warning.
	EnforceBusinessHours bool

	DefaultLocale string
	Timezone      string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	SessionIdleTimeout time.Duration
	HoursRefreshEvery  time.Duration
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "96899795913"),

		CountryCode:       getEnv("PHONE_COUNTRY_CODE", "968"),
		LocalNumberLength: getEnvAsInt("PHONE_LOCAL_DIGITS", 8),

		RequireVehiclePlate:  getEnvAsBool("BOOKING_REQUIRE_PLATE", false),
		RequireVehicleModel:  getEnvAsBool("BOOKING_REQUIRE_MODEL", false),
		RequireEquipmentType: getEnvAsBool("BOOKING_REQUIRE_EQUIPMENT_TYPE", true),

		EnforceBusinessHours: getEnvAsBool("BOOKING_ENFORCE_HOURS", false),

		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		Timezone:      getEnv("TIMEZONE", "Asia/Muscat"),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SessionIdleTimeout: getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		HoursRefreshEvery:  getEnvAsDuration("HOURS_REFRESH_EVERY", time.Minute),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
