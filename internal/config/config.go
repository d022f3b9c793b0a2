package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Port string
	Mode string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL string

	// YooKassa payment configuration
	YooKassaShopID    string
	YooKassaSecretKey string
	YooKassaAPIURL    string
	PaymentReturnURL  string

	// Settings cache configuration
	SettingsCacheMinutes int
}

var AppConfig *Config

func InitConfig() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Ignore error if .env file doesn't exist
	}

	AppConfig = &Config{
		Port:                 getEnv("PORT", "8080"),
		Mode:                 getEnv("GIN_MODE", "debug"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379/0"),
		YooKassaShopID:       getEnv("YOOKASSA_SHOP_ID", ""),
		YooKassaSecretKey:    getEnv("YOOKASSA_SECRET_KEY", ""),
		YooKassaAPIURL:       getEnv("YOOKASSA_API_URL", "https://api.yookassa.ru"),
		PaymentReturnURL:     getEnv("PAYMENT_RETURN_URL", "https://your-domain.com/success"),
		SettingsCacheMinutes: getEnvInt("SETTINGS_CACHE_MINUTES", 5),
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
