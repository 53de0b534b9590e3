package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// MongoConfig holds document store configuration
type MongoConfig struct {
	URL            string
	DBName         string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Mongo       MongoConfig
	Server      ServerConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not returning error as .env file is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		Mongo: MongoConfig{
			URL:            getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			DBName:         getEnv("DATABASE_NAME", "edutrack"),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
			MaxPoolSize:    uint64(getEnvAsInt("DB_MAX_POOL_SIZE", 100)),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
	}

	return config, nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("database_name", c.Mongo.DBName),
		zap.String("server_port", c.Server.Port),
	}
}

// DatabaseURLSet reports whether an explicit store URL was configured.
func DatabaseURLSet() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// DatabaseNameSet reports whether an explicit store name was configured.
func DatabaseNameSet() bool {
	return os.Getenv("DATABASE_NAME") != ""
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
