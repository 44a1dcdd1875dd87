package config_test

import (
	"testing"

	"go-portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./frontend", cfg.FrontendDir)
	assert.Equal(t, "./resume.pdf", cfg.ResumePath)
	assert.Equal(t, "587", cfg.EmailPort)
	assert.Equal(t, "Portfolio Contact", cfg.FromName)
	assert.Equal(t, "logs/contacts.json", cfg.ContactLogPath)
	assert.Equal(t, 900, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 100, cfg.RateLimitThreshold)
	assert.Equal(t, 1, cfg.ContactLimitWindowHours)
	assert.Equal(t, 5, cfg.ContactLimitThreshold)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_USER", "owner@example.com")
	t.Setenv("CONTACT_LIMIT_THRESHOLD", "25")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " https://example.com/ ,https://www.example.com, ")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.example.com", cfg.EmailHost)
	assert.Equal(t, 25, cfg.ContactLimitThreshold)
	assert.Equal(t, 900, cfg.RateLimitWindowSeconds, "invalid int falls back to default")
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
}

func TestSenderDefaultsFollowEmailUser(t *testing.T) {
	t.Setenv("EMAIL_USER", "owner@example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	// From and recipient default to the SMTP login account
	assert.Equal(t, "owner@example.com", cfg.FromEmail)
	assert.Equal(t, "owner@example.com", cfg.ContactTo)

	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("CONTACT_EMAIL_TO", "inbox@example.com")

	cfg, err = config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "noreply@example.com", cfg.FromEmail)
	assert.Equal(t, "inbox@example.com", cfg.ContactTo)
}
