package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	MongoURL      string
	DBName        string
	DBPath        string
	LLMEndpoint   string
	LLMAPIKey     string
	LLMModel      string
	CORSOrigins   string
	CropTableXLSX string
	LogMode       string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		MongoURL:      get("MONGO_URL", ""),
		DBName:        get("DB_NAME", "crop_advisory"),
		DBPath:        get("DB_PATH", "advisory.db"),
		LLMEndpoint:   get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:     get("LLM_API_KEY", ""),
		LLMModel:      get("LLM_MODEL", "gpt-4o-mini"),
		CORSOrigins:   get("CORS_ORIGINS", "*"),
		CropTableXLSX: get("CROP_TABLE_XLSX", ""),
		LogMode:       get("LOG_MODE", "dev"),
	}
	return cfg
}
