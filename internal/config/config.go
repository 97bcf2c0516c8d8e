package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	SMTP       SMTPConfig
	Auth       AuthConfig
	Validation ValidationConfig
	Onboarding OnboardingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AuthConfig struct {
	JWTSecret          string
	SessionTTLHours    int
	DefaultDisplayName string
}

type ValidationConfig struct {
	WebhookURL     string
	TimeoutSeconds int
}

type OnboardingConfig struct {
	QuestionnaireFormURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "portal.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Propel America Portal"),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", "default_secret"),
			SessionTTLHours:    getEnvAsInt("SESSION_TTL_HOURS", 24),
			DefaultDisplayName: getEnv("DEFAULT_DISPLAY_NAME", "Propel User"),
		},
		Validation: ValidationConfig{
			WebhookURL:     getEnv("VALIDATION_WEBHOOK_URL", ""),
			TimeoutSeconds: getEnvAsInt("VALIDATION_TIMEOUT_SECONDS", 15),
		},
		Onboarding: OnboardingConfig{
			QuestionnaireFormURL: getEnv("QUESTIONNAIRE_FORM_URL", "https://propelamerica.formstack.com/forms/screening_questionnaire"),
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
