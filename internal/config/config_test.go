package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("ServerAddress = %q, want %q", cfg.ServerAddress, ":8080")
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Fatalf("DatabaseDriver = %q, want sqlite", cfg.DatabaseDriver)
	}
	if !cfg.SeedDatabase {
		t.Fatalf("SeedDatabase = false, want true")
	}
	if got, want := cfg.MaxUploadBytes(), int64(10<<20); got != want {
		t.Fatalf("MaxUploadBytes = %d, want %d", got, want)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_DRIVER=postgres\nDATABASE_URL=postgres://catalog@localhost/catalog\nSEED_DATABASE=false\nIMAGE_DIR=/srv/images\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("IMAGE_DIR", "/var/images")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Fatalf("DatabaseDriver = %q, want postgres", cfg.DatabaseDriver)
	}
	if cfg.SeedDatabase {
		t.Fatalf("SeedDatabase = true, want false")
	}
	if cfg.ImageDir != "/var/images" {
		t.Fatalf("ImageDir = %q, want env override /var/images", cfg.ImageDir)
	}
	want := []string{"http://localhost:3000", "http://localhost:5173"}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AllowedOrigins = %v, want %v", got, want)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
