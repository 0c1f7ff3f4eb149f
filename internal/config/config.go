package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	// RefreshTokenTTL is how long a refresh session lives in Redis.
	RefreshTokenTTL time.Duration
	BcryptCost      int
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr string
}

// KafkaConfig leaves Broker empty when events are disabled.
type KafkaConfig struct {
	Broker  string
	GroupID string
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	Expiration time.Duration
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "employees"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker:  os.Getenv("KAFKA_BROKER"),
			GroupID: getEnv("KAFKA_GROUP_ID", "go-employee-api-audit"),
		},
		JWT: JWTConfig{
			Secret:     os.Getenv("JWT_SECRET"),
			Issuer:     getEnv("JWT_ISSUER", "go-employee-api"),
			Audience:   getEnv("JWT_AUDIENCE", "go-employee-api"),
			Expiration: time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,
		},
		RefreshTokenTTL: time.Duration(getEnvInt("REFRESH_TOKEN_TTL_HOURS", 24*7)) * time.Hour,
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate rejects settings the API cannot run safely with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		c.JWT.Secret = "dev-secret-change-me"
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL_HOURS must be positive")
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
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
