package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Security SecurityConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

type SecurityConfig struct {
	JWTSecret   string
	JWTValidity time.Duration
}

// StoreConfig selects the persistence driver, either "postgres" or "mongo".
type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI      string
	Database string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// SeedConfig holds the bootstrap credentials created on startup when the
// accounts do not exist yet.
type SeedConfig struct {
	AdminUsername   string
	AdminPassword   string
	AnalystUsername string
	AnalystPassword string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Security: SecurityConfig{
			JWTSecret:   getenv("JWT_SECRET", "change-me-in-production"),
			JWTValidity: time.Duration(getenvInt("JWT_EXPIRATION_MS", 3600000)) * time.Millisecond,
		},
		Store: StoreConfig{
			Driver: getenv("STORE_DRIVER", "postgres"),
		},
		Mongo: MongoConfig{
			URI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getenv("MONGODB_DATABASE", "franchise"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Seed: SeedConfig{
			AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
			AdminPassword:   getenv("ADMIN_PASSWORD", "Admin123!"),
			AnalystUsername: getenv("ANALYST_USERNAME", "analyst"),
			AnalystPassword: getenv("ANALYST_PASSWORD", "Analyst123!"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
