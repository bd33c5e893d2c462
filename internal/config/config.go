package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	AppEnv string
	Port   string

	DBDriver     string
	DBMaxRetries int

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	MongoURI      string
	MongoDatabase string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv: getEnvString("APP_ENV", "development"),
		Port:   getEnvString("PORT", "8000"),

		DBDriver:     strings.ToLower(getEnvString("DB_DRIVER", DriverPostgres)),
		DBMaxRetries: getEnvInt("DB_MAX_RETRIES", 5),

		DBHost:            getEnvString("DB_HOST", "localhost"),
		DBPort:            getEnvString("DB_PORT", "5432"),
		DBUser:            getEnvString("DB_USER", "postgres"),
		DBPassword:        getEnvString("DB_PASSWORD", "postgres"),
		DBName:            getEnvString("DB_NAME", "hrms_lite"),
		DBSSLMode:         getEnvString("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),

		MongoURI:      getEnvString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvString("MONGODB_DATABASE", "hrms_lite"),

		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverMongo {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", cfg.DBDriver, DriverPostgres, DriverMongo)
	}
	if cfg.DBMaxRetries < 1 {
		cfg.DBMaxRetries = 1
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnvString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
