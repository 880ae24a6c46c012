package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"visit-assistant/internal/models"
)

// Config holds the application configuration
type Config struct {
	DataDir         string
	DefaultLanguage models.Language
	LogLevel        zerolog.Level

	// Gemini rewrite
	GoogleAPIKey string
	GeminiModel  string

	// WhatsApp direct send
	WhatsAppDirect     bool
	DefaultCountryCode string

	// Seed for the congregation profile when none is stored yet
	CongregationName         string
	HospitalityOverseer      string
	HospitalityOverseerPhone string
}

// LoadConfig loads configuration from a .env file, environment variables or defaults
func LoadConfig() *Config {
	// a missing .env file is fine, the environment is used as is
	_ = godotenv.Load()

	lang, ok := models.ParseLanguage(getEnv("DEFAULT_LANGUAGE", string(models.LanguageFR)))
	if !ok {
		lang = models.LanguageFR
	}

	return &Config{
		DataDir:                  getEnv("DATA_DIR", "data"),
		DefaultLanguage:          lang,
		LogLevel:                 parseLevel(os.Getenv("LOG_LEVEL")),
		GoogleAPIKey:             os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		WhatsAppDirect:           getEnvBool("WHATSAPP_DIRECT", false),
		DefaultCountryCode:       os.Getenv("DEFAULT_COUNTRY_CODE"),
		CongregationName:         os.Getenv("CONGREGATION_NAME"),
		HospitalityOverseer:      os.Getenv("HOSPITALITY_OVERSEER"),
		HospitalityOverseerPhone: os.Getenv("HOSPITALITY_OVERSEER_PHONE"),
	}
}

// SeedProfile returns the congregation profile described by the environment
func (c *Config) SeedProfile() models.CongregationProfile {
	return models.CongregationProfile{
		Name:                     c.CongregationName,
		HospitalityOverseer:      c.HospitalityOverseer,
		HospitalityOverseerPhone: c.HospitalityOverseerPhone,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// parseLevel falls back to info for empty or unknown levels
func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
