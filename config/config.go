package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendDir string
	ResumePath  string
	// Extra CORS origins beyond the localhost defaults (comma separated)
	AllowedOrigins []string
	// SMTP Configuration - contact form email dispatch.
	// Host and User must both be set for the contact form to send email;
	// otherwise submissions are accepted and logged but nothing is dispatched.
	EmailHost     string
	EmailPort     string
	EmailUser     string
	EmailPassword string
	FromName      string
	FromEmail     string
	ContactTo     string
	// Contact submission analytics log
	ContactLogPath string
	// Redis Configuration (optional, rate limiting backend)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitThreshold      int
	ContactLimitWindowHours int
	ContactLimitThreshold   int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored when missing
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		FrontendDir: getEnv("FRONTEND_DIR", "./frontend"),
		ResumePath:  getEnv("RESUME_PATH", "./resume.pdf"),
		// SMTP Configuration
		EmailHost:     getEnv("EMAIL_HOST", ""),
		EmailPort:     getEnv("EMAIL_PORT", "587"),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		FromName:      getEnv("FROM_NAME", "Portfolio Contact"),
		// Contact submission analytics log
		ContactLogPath: getEnv("CONTACT_LOG_PATH", "logs/contacts.json"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (matches the public site defaults:
		// 100 requests per 15 minutes globally, 5 contact submissions per hour)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
		RateLimitThreshold:      getEnvInt("RATE_LIMIT_THRESHOLD", 100),
		ContactLimitWindowHours: getEnvInt("CONTACT_LIMIT_WINDOW_HOURS", 1),
		ContactLimitThreshold:   getEnvInt("CONTACT_LIMIT_THRESHOLD", 5),
	}

	// The sender address must be verified with the SMTP provider; default to
	// the login account, which is what most transactional providers expect.
	cfg.FromEmail = getEnv("FROM_EMAIL", cfg.EmailUser)
	cfg.ContactTo = getEnv("CONTACT_EMAIL_TO", cfg.EmailUser)

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
