package config

import (
	"fmt"
	"os"
)

// Placeholder credentials used when the provider env vars are unset.
// They keep the service running in a degraded state instead of crashing;
// outbound sends fail and get logged, which is the intended behavior for
// an unconfigured deployment.
const (
	PlaceholderToken         = "YOUR_WHATSAPP_TOKEN"
	PlaceholderVerifyToken   = "YOUR_VERIFY_TOKEN"
	PlaceholderPhoneNumberID = "YOUR_PHONE_NUMBER_ID"
)

type Config struct {
	Port string

	WhatsAppToken string
	VerifyToken   string
	PhoneNumberID string

	PostgresDSN string
	RedisAddr   string
}

// Load reads configuration from the environment. Missing provider
// credentials fall back to placeholders; missing store addresses fall
// back to local defaults.
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "3001"),
		WhatsAppToken: getenv("WHATSAPP_TOKEN", PlaceholderToken),
		VerifyToken:   getenv("VERIFY_TOKEN", PlaceholderVerifyToken),
		PhoneNumberID: getenv("PHONE_NUMBER_ID", PlaceholderPhoneNumberID),
		PostgresDSN:   postgresDSN(),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
	}
}

// Configured reports whether real provider credentials were supplied.
func (c *Config) Configured() bool {
	return c.WhatsAppToken != PlaceholderToken &&
		c.VerifyToken != PlaceholderVerifyToken &&
		c.PhoneNumberID != PlaceholderPhoneNumberID
}

func postgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("PG_HOST", "localhost"),
		getenv("PG_PORT", "5432"),
		getenv("PG_USER", "postgres"),
		getenv("PG_PASSWORD", "postgres"),
		getenv("PG_DB_NAME", "twigane"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
