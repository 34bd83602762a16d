package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	GeminiAPIKey      string
	Port              string
	ComponentsCSV     string
	LaptopsXLSX       string
	DatabaseURL       string
	AllowEmptySecrets bool
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		Port:              getEnv("PORT", "8080"),
		ComponentsCSV:     getEnv("COMPONENTS_CSV", "data/components.csv"),
		LaptopsXLSX:       getEnv("LAPTOPS_XLSX", "data/laptops.xlsx"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	// Validatsiya
	if !config.AllowEmptySecrets && config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
