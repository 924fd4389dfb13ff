package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "WHATSAPP_TOKEN", "VERIFY_TOKEN", "PHONE_NUMBER_ID", "REDIS_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3001" {
		t.Errorf("Port = %q, want 3001", cfg.Port)
	}
	if cfg.WhatsAppToken != PlaceholderToken {
		t.Errorf("WhatsAppToken = %q, want placeholder", cfg.WhatsAppToken)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.Configured() {
		t.Error("placeholder credentials must not count as configured")
	}
}

func TestLoadConfigured(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "real-token")
	t.Setenv("VERIFY_TOKEN", "real-verify")
	t.Setenv("PHONE_NUMBER_ID", "12345")
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_DB_NAME", "twigane_prod")

	cfg := Load()
	if !cfg.Configured() {
		t.Error("real credentials must count as configured")
	}
	want := "host=db.internal port=5432 user=postgres password=postgres dbname=twigane_prod sslmode=disable"
	if cfg.PostgresDSN != want {
		t.Errorf("PostgresDSN = %q, want %q", cfg.PostgresDSN, want)
	}
}
