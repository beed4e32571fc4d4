package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Flat-file store locations
	DataDir       string
	PortfolioFile string
	ProfileFile   string
	// Admin credential (single administrative user)
	AdminUsername     string
	AdminPassword     string // plaintext fallback, prefer the hash
	AdminPasswordHash string // bcrypt hash, generated with scripts/genhash.go
	// SMTP Configuration (contact form)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	ContactEmailTo string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "data")

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		DataDir:       dataDir,
		PortfolioFile: getEnv("PORTFOLIO_FILE", filepath.Join(dataDir, "portfolio.json")),
		ProfileFile:   getEnv("PROFILE_FILE", filepath.Join(dataDir, "profile.json")),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 5),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Println("WARNING: Neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set. Login will reject everything.")
	}
	if cfg.AdminPassword != "" && cfg.AdminPasswordHash != "" {
		log.Println("WARNING: Both ADMIN_PASSWORD and ADMIN_PASSWORD_HASH set; the hash takes precedence.")
	}
	if cfg.SMTPUsername == "" || cfg.ContactEmailTo == "" {
		log.Println("WARNING: SMTP not fully configured. Contact form will be unavailable.")
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
