package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting read from the environment
type Config struct {
	Env      string
	Port     string
	BaseURL  string
	LogLevel logrus.Level

	ChromePath string
	ImageDir   string
	CacheDir   string

	GmailCredentialsFile string
	GmailSender          string
	QuoteToEmails        []string
	ReplyToEmail         string

	SendTimeout   time.Duration
	SessionTTL    time.Duration
	PDFTimeout    time.Duration
	EnableTracing bool
	CookiePrefix  string
}

// Addr returns the listen address. It binds 0.0.0.0 so containers accept outside connections.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// LoadDotEnv applies a .env file outside production.
// Values in the file override the process environment; a missing file is not an error.
func LoadDotEnv(log logrus.FieldLogger, path string) {
	if os.Getenv("ENV") == "production" {
		return
	}
	if err := godotenv.Overload(path); err != nil {
		log.Debugf("⚠️  .env file not found at %s, using system environment variables", path)
		return
	}
	log.Infof("✅ Loaded environment variables from %s", path)
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:                  getEnv("ENV", "development"),
		Port:                 strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		ChromePath:           os.Getenv("CHROME_PATH"),
		ImageDir:             getEnv("IMAGE_DIR", "static/products"),
		CacheDir:             getEnv("CACHE_DIR", "cache/images"),
		GmailCredentialsFile: os.Getenv("GMAIL_CREDENTIALS_FILE"),
		GmailSender:          os.Getenv("GMAIL_SENDER"),
		QuoteToEmails:        splitList(os.Getenv("QUOTE_TO_EMAILS")),
		ReplyToEmail:         os.Getenv("REPLY_TO_EMAIL"),
		EnableTracing:        os.Getenv("ENABLE_TRACING") == "1",
		CookiePrefix:         getEnv("COOKIE_PREFIX", "signage_"),
	}
	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:"+cfg.Port)

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.SendTimeout, err = getDuration("SEND_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 48*time.Hour); err != nil {
		return nil, err
	}
	if cfg.PDFTimeout, err = getDuration("PDF_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GmailConfigured reports whether quote emails can go out through the Gmail API
func (c *Config) GmailConfigured() bool {
	return c.GmailCredentialsFile != "" && c.GmailSender != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
