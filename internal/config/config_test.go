package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("expected development env, got %s", cfg.Env)
	}
	if cfg.PrimaryCity != "Ottawa" {
		t.Errorf("expected Ottawa, got %s", cfg.PrimaryCity)
	}
	if cfg.CooldownWindow != 30*time.Second {
		t.Errorf("expected 30s cooldown, got %s", cfg.CooldownWindow)
	}
	if cfg.MaxPhotos != 5 {
		t.Errorf("expected 5 max photos, got %d", cfg.MaxPhotos)
	}
	if cfg.MaxPhotoBytes != 6*1024*1024 {
		t.Errorf("expected 6MiB photo cap, got %d", cfg.MaxPhotoBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QUOTE_COOLDOWN_WINDOW", "2m")
	t.Setenv("LEADS_TABLE", "quote_leads")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("MAX_LEAD_PHOTOS", "3")

	cfg := Load()

	if cfg.CooldownWindow != 2*time.Minute {
		t.Errorf("expected 2m cooldown, got %s", cfg.CooldownWindow)
	}
	if cfg.LeadsTable != "quote_leads" {
		t.Errorf("expected quote_leads, got %s", cfg.LeadsTable)
	}
	if !cfg.RedisTLS {
		t.Error("expected RedisTLS true")
	}
	if cfg.MaxPhotos != 3 {
		t.Errorf("expected 3 max photos, got %d", cfg.MaxPhotos)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("QUOTE_COOLDOWN_WINDOW", "soon")
	t.Setenv("MAX_LEAD_PHOTOS", "many")

	cfg := Load()

	if cfg.CooldownWindow != 30*time.Second {
		t.Errorf("expected default cooldown on parse failure, got %s", cfg.CooldownWindow)
	}
	if cfg.MaxPhotos != 5 {
		t.Errorf("expected default photo cap on parse failure, got %d", cfg.MaxPhotos)
	}
}
