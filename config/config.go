package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	Bookings   BookingsConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins string
	LogFile      string
}

type DatabaseConfig struct {
	URL          string
	AutoMigrate  bool
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CloudinaryConfig holds Cloudinary configuration
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Enabled reports whether all credentials needed for uploads are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type BookingsConfig struct {
	// PublicFetch exposes fetch-by-id for bookings without authentication.
	PublicFetch    bool
	DigestSchedule string
	StaleAfter     time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			LogFile:      getEnv("LOG_FILE", ""),
		},
		Database: DatabaseConfig{
			URL:          getEnv("DATABASE_URL", ""),
			AutoMigrate:  getEnvAsBool("DB_AUTO_MIGRATE", true),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			AccessTokenTTL: time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 3000)) * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:       getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:    getEnv("CLOUDINARY_API_SECRET", ""),
			UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		},
		Bookings: BookingsConfig{
			PublicFetch:    getEnvAsBool("BOOKING_PUBLIC_FETCH", false),
			DigestSchedule: strings.TrimSpace(getEnv("BOOKING_DIGEST_SCHEDULE", "@hourly")),
			StaleAfter:     getEnvAsDuration("BOOKING_STALE_AFTER", 72*time.Hour),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	required := []struct {
		field string
		value string
	}{
		{"DATABASE_URL", cfg.Database.URL},
		{"JWT_SECRET", cfg.Auth.JWTSecret},
	}

	for _, r := range required {
		if r.value == "" {
			return newConfigError(r.field, "must not be empty")
		}
	}

	if cfg.Auth.AccessTokenTTL <= 0 {
		return newConfigError("ACCESS_TOKEN_EXPIRE_MINUTES", "must be positive")
	}
	if cfg.Bookings.StaleAfter <= 0 {
		return newConfigError("BOOKING_STALE_AFTER", "must be a positive duration")
	}

	return nil
}

type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Reason
}

func newConfigError(field, reason string) ConfigError {
	return ConfigError{
		Field:  field,
		Reason: reason,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
