package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port default = %q", cfg.Port)
	}
	if cfg.TaxRate != 0.10 {
		t.Fatalf("tax rate default = %v", cfg.TaxRate)
	}
	if cfg.Currency != "USD" {
		t.Fatalf("currency default = %q", cfg.Currency)
	}
	if cfg.EmailEnabled() {
		t.Fatalf("email should be disabled without SMTP_HOST")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadRejectsBadTaxRate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TAX_RATE", "-0.5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative tax rate")
	}
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/shop")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DSN() != "postgres://app:pw@db:5432/shop" {
		t.Fatalf("DSN = %q", cfg.DSN())
	}
}
