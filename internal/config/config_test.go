package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Database: DatabaseConfig{Host: "localhost", Port: "5432", User: "bot", Name: "kharj"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, Normalize(cfg))

	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Database.MaxConnections)
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeRequiresDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{}
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeWebhookMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "webhook"
	assert.Error(t, Normalize(cfg), "webhook mode without url/listen must fail")

	cfg = validConfig()
	cfg.Telegram.RunMode = "webhook"
	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	assert.NoError(t, Normalize(cfg))
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestDSNPrefersURL(t *testing.T) {
	db := DatabaseConfig{
		URL:  "postgres://u:p@db:5432/kharj?sslmode=require",
		Host: "ignored",
	}
	assert.Equal(t, "postgres://u:p@db:5432/kharj?sslmode=require", db.DSN())

	db = DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "kharj", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/kharj?sslmode=disable", db.DSN())
}

func TestNormalizeRejectsBadExclude(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	assert.Error(t, Normalize(cfg))
}
