package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	LogLevel   string

	// Метка типа сущности команды в нижнем регистре ("team", "company", ...)
	TeamTypeLabel       string
	TeamTypeLabelPlural string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "password"),
		DBName:              getEnv("DB_NAME", "team_members"),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		TeamTypeLabel:       strings.ToLower(getEnv("TEAM_TYPE_LABEL", "team")),
		TeamTypeLabelPlural: strings.ToLower(getEnv("TEAM_TYPE_LABEL_PLURAL", "teams")),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
