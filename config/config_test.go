package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  addr: "127.0.0.1:9000"
  mode: "debug"
  shutdown_timeout: "5s"

database:
  driver: "MySQL"
  dsn: "u:p@tcp(127.0.0.1:3306)/studybud?parseTime=true"

redis:
  addr: "127.0.0.1:6380"
  db: 2

session:
  cookie_name: "sb_session"
  ttl: "24h"

log:
  level: "debug"
  format: "json"

app:
  upload_dir: "/tmp/studybud"
  feed_limit: 20
`

func TestLoad_DefaultsFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %q, want :8000", cfg.Server.Addr)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Session.CookieName != "sessionid" {
		t.Errorf("Session.CookieName = %q, want sessionid", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 14*24*time.Hour {
		t.Errorf("Session.TTL = %s, want 336h", cfg.Session.TTL)
	}
	if cfg.App.FeedLimit != 50 {
		t.Errorf("App.FeedLimit = %d, want 50", cfg.App.FeedLimit)
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("APP_FEED_LIMIT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Database.Driver = %q, want mysql (normalized)", cfg.Database.Driver)
	}
	if cfg.Redis.Addr != "127.0.0.1:6380" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Session.CookieName != "sb_session" || cfg.Session.TTL != 24*time.Hour {
		t.Errorf("Session = %+v", cfg.Session)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.App.FeedLimit != 7 {
		t.Errorf("App.FeedLimit = %d, want env override 7", cfg.App.FeedLimit)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:   ServerConfig{ShutdownTimeout: time.Second},
			Database: DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"},
			Redis:    RedisConfig{Addr: "127.0.0.1:6379"},
			Session:  SessionConfig{CookieName: "sessionid", TTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad driver", func(c *Config) { c.Database.Driver = "postgres" }, "database.driver"},
		{"empty dsn", func(c *Config) { c.Database.DSN = " " }, "database.dsn"},
		{"empty redis", func(c *Config) { c.Redis.Addr = "" }, "redis.addr"},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, "session.ttl"},
		{"empty cookie", func(c *Config) { c.Session.CookieName = "" }, "session.cookie_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
