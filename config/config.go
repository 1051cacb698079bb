package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"farmhub/pkg/logging"
)

type AppConfig struct {
	Port     string
	Timezone string

	DBDriver    string // sqlite|postgres
	DBPath      string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string

	AdminNotifyEmail string
	AdminNotifyPhone string
	NotifyEmail      bool
	NotifySMS        bool
	AWSRegion        string
	SESFromEmail     string
	PhoneCountryCode string

	PublicRateLimit string
	CORSOrigins     []string

	SeedVarieties   string
	SeedGreenhouse  string
	SeedBedsPerSide int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logging.Component("cfg").Debugf("no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(get(k, "")); err == nil {
			return v
		}
		return def
	}

	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Asia/Kolkata"),

		DBDriver:    strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:      get("DB_PATH", "farmhub.db"),
		DatabaseURL: get("DATABASE_URL", ""),

		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "text"),

		SessionTTL:    time.Duration(getInt("SESSION_TTL_HOURS", 24*7)) * time.Hour,
		AdminUsername: get("ADMIN_USERNAME", ""),
		AdminPassword: get("ADMIN_PASSWORD", ""),

		AdminNotifyEmail: get("ADMIN_NOTIFY_EMAIL", ""),
		AdminNotifyPhone: get("ADMIN_NOTIFY_PHONE", ""),
		NotifyEmail:      get("NOTIFY_EMAIL", "false") == "true",
		NotifySMS:        get("NOTIFY_SMS", "false") == "true",
		AWSRegion:        get("AWS_REGION", ""),
		SESFromEmail:     get("SES_FROM_EMAIL", ""),
		PhoneCountryCode: get("PHONE_COUNTRY_CODE", "+91"),

		PublicRateLimit: get("PUBLIC_RATE_LIMIT", "30-M"),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "*")),

		SeedVarieties:   get("SEED_VARIETIES", ""),
		SeedGreenhouse:  get("SEED_GREENHOUSE", ""),
		SeedBedsPerSide: getInt("SEED_BEDS_PER_SIDE", 10),
	}
	logging.Component("cfg").Infof("%+v", cfg.Masked())
	return cfg
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logging.Component("cfg").Warnf("unknown TZ %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// Masked returns a copy safe to log.
func (c AppConfig) Masked() AppConfig {
	if c.AdminPassword != "" {
		c.AdminPassword = "****"
	}
	if c.DatabaseURL != "" {
		c.DatabaseURL = "****"
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
