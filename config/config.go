// Package config loads runtime configuration from environment variables,
// with sane local-development defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the API, the worker and the CLI tools need.
type Config struct {
	Port string

	// StoreBackend selects where attendance events live: "db" for the GORM
	// database, "sheets" for the remote spreadsheet.
	StoreBackend      string
	DBDriver          string
	DBDSN             string
	SheetsID          string
	SheetsCredentials string

	RosterPath   string
	SessionsPath string

	PassphraseHash string
	JWTSecret      string

	RedisAddr string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	WorkDir   string
	ChartFont string

	// NegativePolicy controls how negative-duration intervals are treated:
	// include, drop or clamp.
	NegativePolicy string

	// WhatsAppGroups maps committee labels to invite links, as a
	// comma-separated list of label=link pairs.
	WhatsAppGroups map[string]string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("STORE_BACKEND", "db")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "attendance.db")
	v.SetDefault("ROSTER_PATH", "data/roster.csv")
	v.SetDefault("SESSIONS_PATH", "data/sessions.csv")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("WORK_DIR", "work")
	v.SetDefault("NEGATIVE_POLICY", "include")

	return Config{
		Port:              v.GetString("PORT"),
		StoreBackend:      v.GetString("STORE_BACKEND"),
		DBDriver:          v.GetString("DB_DRIVER"),
		DBDSN:             v.GetString("DB_DSN"),
		SheetsID:          v.GetString("SHEETS_ID"),
		SheetsCredentials: v.GetString("SHEETS_CREDENTIALS"),
		RosterPath:        v.GetString("ROSTER_PATH"),
		SessionsPath:      v.GetString("SESSIONS_PATH"),
		PassphraseHash:    v.GetString("PASSPHRASE_HASH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		SMTPHost:          v.GetString("SMTP_HOST"),
		SMTPPort:          v.GetInt("SMTP_PORT"),
		SMTPUser:          v.GetString("SMTP_USER"),
		SMTPPass:          v.GetString("SMTP_PASS"),
		SMTPFrom:          v.GetString("SMTP_FROM"),
		WorkDir:           v.GetString("WORK_DIR"),
		ChartFont:         v.GetString("CHART_FONT"),
		NegativePolicy:    v.GetString("NEGATIVE_POLICY"),
		WhatsAppGroups:    parseGroups(v.GetString("WHATSAPP_GROUPS")),
	}
}

// parseGroups splits "Comité A=https://...,Comité B=https://..." into a map.
func parseGroups(raw string) map[string]string {
	groups := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		label, link, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		label = strings.TrimSpace(label)
		link = strings.TrimSpace(link)
		if label != "" && link != "" {
			groups[label] = link
		}
	}
	return groups
}
