package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PORT           string
	DATABASE_URL   string
	JWT_SECRET     string
	REFRESH_SECRET string
	KAFKA_ADDRESS  string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:           getenv("PORT", "3001"),
		DATABASE_URL:   getenv("DATABASE_URL", "file::memory:?cache=shared"),
		JWT_SECRET:     getenv("JWT_SECRET", "dev-secret"),
		REFRESH_SECRET: getenv("REFRESH_SECRET", "dev-refresh-secret"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		LOG_LEVEL:      getenv("LOG_LEVEL", "info"),
	}

	return config, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
