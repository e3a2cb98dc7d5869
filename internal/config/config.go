package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Leave    LeaveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
	SSEExpiration    string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port            int
	Env             string
	LogLevel        string
	Timezone        string
	FrontendOrigins []string
	AllowTestSignup bool
}

// LeaveConfig holds working-time and leave policy
type LeaveConfig struct {
	DefaultAnnualDays float64
	StandardCloseHour int
}

// Load reads the process environment. Variables that are unset fall back to
// .env, then to the YAML file named by CONFIG_FILE, then to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := loadFile(os.Getenv("CONFIG_FILE")); err != nil {
		return nil, err
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_app"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	allowSignup, err := strconv.ParseBool(getEnv("ALLOW_TEST_SIGNUP", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOW_TEST_SIGNUP: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Timezone:        getEnv("APP_TIMEZONE", "Asia/Seoul"),
		FrontendOrigins: getEnvSlice("FRONTEND_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
		AllowTestSignup: allowSignup,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
		SSEExpiration:    getEnv("JWT_SSE_EXPIRATION_TIME", "5m"),
	}

	// Leave policy
	annualDays, err := strconv.ParseFloat(getEnv("DEFAULT_ANNUAL_LEAVE_DAYS", "15"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_ANNUAL_LEAVE_DAYS: %w", err)
	}
	closeHour, err := strconv.Atoi(getEnv("STANDARD_CLOSE_HOUR", "18"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_CLOSE_HOUR: %w", err)
	}

	config.Leave = LeaveConfig{
		DefaultAnnualDays: annualDays,
		StandardCloseHour: closeHour,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.SSEExpiration); err != nil {
		return fmt.Errorf("JWT_SSE_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	if c.Leave.StandardCloseHour < 0 || c.Leave.StandardCloseHour > 23 {
		return fmt.Errorf("STANDARD_CLOSE_HOUR must be between 0 and 23")
	}
	if c.Leave.DefaultAnnualDays < 0 {
		return fmt.Errorf("DEFAULT_ANNUAL_LEAVE_DAYS must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the configured business time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
