package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "+91", cfg.PhoneCountryCode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("NOTIFY_EMAIL", "true")
	t.Setenv("CORS_ORIGINS", "https://farm.example, http://localhost:5173 ,")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.NotifyEmail)
	assert.Equal(t, []string{"https://farm.example", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestMaskedHidesSecrets(t *testing.T) {
	cfg := AppConfig{AdminPassword: "hunter2", DatabaseURL: "postgres://u:p@h/db"}
	m := cfg.Masked()
	assert.Equal(t, "****", m.AdminPassword)
	assert.Equal(t, "****", m.DatabaseURL)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{Timezone: "Mars/Olympus"}.Location())
}
