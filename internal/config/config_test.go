package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Currency != "€" {
		t.Fatalf("currency = %q, want euro default", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DataDir = "/tmp/bp-data"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.General.Currency != "$" || loaded.General.DataDir != "/tmp/bp-data" {
		t.Fatalf("loaded = %+v", loaded.General)
	}
}

func TestSessionIsStable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first, err := LoadSession(dir)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.UserID == "" {
		t.Fatal("fresh session has no user id")
	}

	second, err := LoadSession(dir)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second.UserID != first.UserID {
		t.Fatalf("user id changed across loads: %q vs %q", first.UserID, second.UserID)
	}
}
