package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// Chatbot
	ChatStorePath     string
	KnowledgeBasePath string
	ChatRateLimit     int

	// Remote completion
	OpenAIKey         string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64

	// Simulated payments
	UPIPayeeName string
	UPIPayeeVPA  string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	cfg := Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		ChatStorePath:     os.Getenv("CHAT_STORE_PATH"),
		KnowledgeBasePath: os.Getenv("KNOWLEDGE_BASE_PATH"),
		ChatRateLimit:     envInt("CHAT_RATE_LIMIT", 0),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
		OpenAIMaxTokens:   envInt("OPENAI_MAX_TOKENS", 300),
		OpenAITemperature: envFloat("OPENAI_TEMPERATURE", 0.7),
		UPIPayeeName:      os.Getenv("UPI_PAYEE_NAME"),
		UPIPayeeVPA:       os.Getenv("UPI_PAYEE_VPA"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ChatStorePath == "" {
		cfg.ChatStorePath = "chat_store.db"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}
	if cfg.UPIPayeeName == "" {
		cfg.UPIPayeeName = "VastraRent"
	}
	if cfg.UPIPayeeVPA == "" {
		cfg.UPIPayeeVPA = "vastrarent@simbank"
	}

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %g", key, raw, fallback)
		return fallback
	}
	return v
}
