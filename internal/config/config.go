package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"game-night-go/pkg/logger"
)

type Config struct {
	HTTPPort string
	Env      string
	CORS     CORSConfig
	DB       DBConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Games    GamesConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	SkipAuth     bool
	MockUserID   string
	MockUserName string
}

type CatalogConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxResults int
}

// GamesConfig carries the defaults that used to be scattered through the
// call sites of the original app.
type GamesConfig struct {
	DefaultCondition string
	RecencyWindow    time.Duration
	RecentPlaysLimit int
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000")},
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "game_night"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("AUTH_JWT_SECRET", ""),
			TokenTTL:     getEnvDuration("AUTH_TOKEN_TTL", 7*24*time.Hour),
			SkipAuth:     getEnvBool("AUTH_SKIP", false),
			MockUserID:   getEnv("AUTH_MOCK_USER_ID", "00000000-0000-0000-0000-000000000001"),
			MockUserName: getEnv("AUTH_MOCK_USER_NAME", "Dev User"),
		},
		Catalog: CatalogConfig{
			BaseURL:    getEnv("BGG_BASE_URL", "https://boardgamegeek.com/xmlapi2"),
			Timeout:    getEnvDuration("BGG_TIMEOUT", 10*time.Second),
			MaxResults: getEnvInt("BGG_MAX_RESULTS", 5),
		},
		Games: GamesConfig{
			DefaultCondition: getEnv("GAMES_DEFAULT_CONDITION", "good"),
			RecencyWindow:    getEnvDuration("RECOMMEND_RECENCY_WINDOW", 28*24*time.Hour),
			RecentPlaysLimit: getEnvInt("DASHBOARD_RECENT_PLAYS", 5),
		},
	}, nil
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
