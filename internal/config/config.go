package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Survey   SurveyConfig
	Branding BrandingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SurveyConfig struct {
	// ConjointRounds is the number of A/B comparisons per session.
	ConjointRounds int
	// SessionTimeoutMinutes is consumed by callers enforcing HTTP-level
	// timeouts; the core state machine does not read it.
	SessionTimeoutMinutes int
	// StrategyName selects the randomization strategy at boot. The active
	// strategy is fixed for the experiment, never per request.
	StrategyName string
	// MinDifferences is the balanced strategy's minimum differing attributes.
	MinDifferences int
}

type BrandingConfig struct {
	AssistantName string
	CompanyName   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Survey: SurveyConfig{
			ConjointRounds:        getEnvAsInt("CONJOINT_ROUNDS", 5),
			SessionTimeoutMinutes: getEnvAsInt("SESSION_TIMEOUT_MINUTES", 60),
			StrategyName:          getEnv("RANDOMIZATION_STRATEGY", "balanced"),
			MinDifferences:        getEnvAsInt("BALANCED_MIN_DIFFERENCES", 2),
		},
		Branding: BrandingConfig{
			AssistantName: getEnv("ASSISTANT_NAME", "Jill"),
			CompanyName:   getEnv("COMPANY_NAME", "Veda-"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
