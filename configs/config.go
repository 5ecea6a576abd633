package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	MediaBaseURL string // prefix for absolute image URLs in API responses
	UploadDir    string
	TableCount   int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "menu.db"),
		Port:         getEnv("PORT", "8000"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", "http://localhost:8000"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		TableCount:   getEnvInt("TABLE_COUNT", 10),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
