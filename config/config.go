package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment     string
	Port            string
	DBUrl           string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	// EnforceCapacity refuses signups once an activity reaches max_participants.
	EnforceCapacity bool
	Email           EmailConfig
}

// EmailConfig holds settings for signup confirmation emails.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            getEnv("PORT", "8080"),
		DBUrl:           os.Getenv("DATABASE_URL"),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout: 10 * time.Second,
		Email: EmailConfig{
			Provider:           getEnv("EMAIL_PROVIDER", "noop"),
			FromAddress:        getEnv("EMAIL_FROM_ADDRESS", "activities@mergington.edu"),
			FromName:           getEnv("EMAIL_FROM_NAME", "Mergington High School"),
			AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Printf("Warning: invalid SHUTDOWN_TIMEOUT %q, using %s", s, cfg.ShutdownTimeout)
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	if s := os.Getenv("SES_INSECURE_SKIP_VERIFY"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			log.Printf("Warning: invalid SES_INSECURE_SKIP_VERIFY %q, ignoring", s)
		}
		cfg.Email.SESInsecureSkipVerify = v
	}

	if s := os.Getenv("ENFORCE_CAPACITY"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			log.Printf("Warning: invalid ENFORCE_CAPACITY %q, ignoring", s)
		}
		cfg.EnforceCapacity = v
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList turns a comma separated value into a trimmed list, dropping empty items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
