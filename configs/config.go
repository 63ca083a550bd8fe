package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (k *KafkaConfig) Enabled() bool {
	return len(k.Brokers) != 0
}

type AppConfig struct {
	Host      string
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	JwtSecret string

	Database DatabaseConfig
	Kafka    KafkaConfig
}

func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads the environment. A .env file in the working directory is
// applied first when present; variables already set win.
func Load() *AppConfig {
	_ = godotenv.Load()

	return &AppConfig{
		Host:      getEnv("HOST", ""),
		Port:      getEnv("PORT", "8081"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		JwtSecret: getEnv("JWT_SECRET", ""),
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			DSN:             getEnv("DATABASE_DSN", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "ledger_balance_changed"),
		},
	}
}

func (c *AppConfig) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid database driver '%s': must be postgres or sqlite", c.Database.Driver))
	}

	if c.Database.DSN == "" {
		errors = append(errors, "DATABASE_DSN is required")
	}

	if c.JwtSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be json or text", c.LogFormat))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		errors = append(errors, "KAFKA_TOPIC cannot be empty when KAFKA_BROKERS is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	hasil := []string{}
	for _, item := range strings.Split(os.Getenv(key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			hasil = append(hasil, item)
		}
	}
	return hasil
}
