package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if !cfg.CurrencyFlag {
		t.Error("CurrencyFlag = false, want true by default")
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, "file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
output_dir = "/tmp/exports"
currency_flag = false

[store]
backend = "redis"
redis_addr = "redis.internal:6380"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputDir != "/tmp/exports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/exports")
	}
	if cfg.CurrencyFlag {
		t.Error("CurrencyFlag = true, want false")
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, "redis")
	}
	if cfg.Store.RedisAddr != "redis.internal:6380" {
		t.Errorf("Store.RedisAddr = %q, want %q", cfg.Store.RedisAddr, "redis.internal:6380")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Store.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Store.MongoURI = %q, want default", cfg.Store.MongoURI)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
output_dir = "out"
future_feature = "enabled"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with unknown key error = %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("output_dir = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) succeeded, want error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.OutputDir = "/srv/menus"
	cfg.Store.Backend = "mongo"
	cfg.Store.MongoURI = "mongodb://db:27017"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.OutputDir != cfg.OutputDir {
		t.Errorf("OutputDir = %q, want %q", got.OutputDir, cfg.OutputDir)
	}
	if got.Store.Backend != "mongo" || got.Store.MongoURI != "mongodb://db:27017" {
		t.Errorf("Store = %+v, want backend mongo with custom URI", got.Store)
	}
}
