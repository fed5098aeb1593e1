package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
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
	Calendar CalendarConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Enabled        bool
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL []string
}

// CalendarConfig holds the clock widget defaults
type CalendarConfig struct {
	DefaultLanguage string
	YearMode        string
	Timezone        string
	TickInterval    time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func Load() (*Config, error) {
	// .env is optional; the process environment wins over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbEnabled, err := strconv.ParseBool(getEnv("DATABASE_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_ENABLED: %w", err)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbConnectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		Enabled:        dbEnabled,
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           dbPort,
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", "rona"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		MaxConns:       int32(dbMaxConns),
		ConnectTimeout: dbConnectTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnvSlice("FRONTEND_URL"),
	}

	// JWT configuration
	jwtAccessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: jwtAccessExpiration,
	}

	// Calendar configuration
	tickInterval, err := time.ParseDuration(getEnv("CALENDAR_TICK_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TICK_INTERVAL: %w", err)
	}

	config.Calendar = CalendarConfig{
		DefaultLanguage: getEnv("CALENDAR_DEFAULT_LANGUAGE", "en"),
		YearMode:        getEnv("CALENDAR_YEAR_MODE", "uniform"),
		Timezone:        getEnv("CALENDAR_TIMEZONE", "Africa/Addis_Ababa"),
		TickInterval:    tickInterval,
	}

	// Metrics configuration
	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	config.Metrics = MetricsConfig{
		Enabled: metricsEnabled,
		Path:    getEnv("METRICS_PATH", "/metrics"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Enabled && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DATABASE_ENABLED is true")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if c.Calendar.TickInterval <= 0 {
		return fmt.Errorf("CALENDAR_TICK_INTERVAL must be positive")
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
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

// SlogLevel parses LOG_LEVEL (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.App.LogLevel, err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
