package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
app_addr: ":9090"
db_dsn: "user:pw@tcp(db:3306)/buses"
jwt_secret: "file-secret-0123456789"
token_ttl: 2h
booking_lock: none
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("APP_ADDR", ":7070")

	env, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if env.AppAddr != ":7070" {
		t.Fatalf("env should override file, got %s", env.AppAddr)
	}
	if env.DBDSN != "user:pw@tcp(db:3306)/buses" {
		t.Fatalf("dsn not read from file: %s", env.DBDSN)
	}
	if env.TokenTTL != 2*time.Hour {
		t.Fatalf("token ttl not parsed, got %v", env.TokenTTL)
	}
	if env.BookingLock != LockNone {
		t.Fatalf("booking lock not read, got %s", env.BookingLock)
	}
}

func TestLoad_RedisLockNeedsAddress(t *testing.T) {
	t.Setenv("BOOKING_LOCK", "redis")
	t.Setenv("REDIS_ADDR", "")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected validation error when redis lock has no address")
	}
}

func TestLoad_RejectsUnknownLockBackend(t *testing.T) {
	t.Setenv("BOOKING_LOCK", "etcd")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected validation error for unknown lock backend")
	}
}

func TestLoadEnv_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	env := LoadEnv()
	if len(env.CORSAllowedOrigins) != 2 || env.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", env.CORSAllowedOrigins)
	}
}
