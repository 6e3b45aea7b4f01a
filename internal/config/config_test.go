package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9080 {
		t.Errorf("expected default port 9080, got %d", cfg.Port)
	}
	if cfg.DataDir != "data" || cfg.AssetsDir != "dist" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlg.yml")
	os.WriteFile(path, []byte("port: 7070\ndata_dir: /var/lib/nlg\nallow_all_origins: true\n"), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.DataDir != "/var/lib/nlg" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if !cfg.AllowAll {
		t.Error("allow_all_origins not applied")
	}
	// Unset fields keep their defaults.
	if cfg.AssetsDir != "dist" {
		t.Errorf("assets_dir = %q", cfg.AssetsDir)
	}
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlg.yml")
	os.WriteFile(path, []byte("port: 7070\n"), 0644)
	t.Setenv("NLG_PORT", "6060")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 6060 {
		t.Errorf("env override lost, port = %d", cfg.Port)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlg.yml")
	orig := &Config{Port: 8081, DataDir: "d", AssetsDir: "a", AllowAll: true}
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != orig.Port || cfg.DataDir != orig.DataDir || cfg.AllowAll != orig.AllowAll {
		t.Errorf("round trip mismatch: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg = DefaultConfig()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty data_dir")
	}
}

func TestDBPath(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	if got := cfg.DBPath(); got != filepath.Join("data", "nlg.db") {
		t.Errorf("DBPath = %q", got)
	}
}
