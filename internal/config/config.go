package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"24h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"30m"`
	ResetURLBase  string        `env:"RESET_URL_BASE" envDefault:"http://localhost:5173/reset-password"`

	// Mail Config
	MailGatewayURL string        `env:"MAIL_GATEWAY_URL"`
	MailSecret     string        `env:"MAIL_SECRET"`
	MailTimeout    time.Duration `env:"MAIL_TIMEOUT" envDefault:"5s"`
	MailMaxRetries int           `env:"MAIL_MAX_RETRIES" envDefault:"3"`
	MailBaseDelay  time.Duration `env:"MAIL_BASE_DELAY" envDefault:"1s"`
	OpsEmail       string        `env:"OPS_EMAIL"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         getEnvAsDuration("JWT_TTL", 24*time.Hour),
		ResetTokenTTL:  getEnvAsDuration("RESET_TOKEN_TTL", 30*time.Minute),
		ResetURLBase:   getEnv("RESET_URL_BASE", "http://localhost:5173/reset-password"),
		MailGatewayURL: os.Getenv("MAIL_GATEWAY_URL"),
		MailSecret:     os.Getenv("MAIL_SECRET"),
		MailTimeout:    getEnvAsDuration("MAIL_TIMEOUT", 5*time.Second),
		MailMaxRetries: getEnvAsInt("MAIL_MAX_RETRIES", 3),
		MailBaseDelay:  getEnvAsDuration("MAIL_BASE_DELAY", time.Second),
		OpsEmail:       os.Getenv("OPS_EMAIL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
