package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
server:
  port: 9090
  read_timeout: 15s
postgres:
  host: db.internal
  port: 5432
  user: app
  password: secret
  database: pulseboard
market:
  timeout: 3s
  retries: 1
  tickers: [AAPL, MSFT]
logging:
  level: debug
  format: text
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("server.read_timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	// Unset values keep their defaults.
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("server.write_timeout = %v, want default 10s", cfg.Server.WriteTimeout)
	}
	if cfg.Market.Timeout != 3*time.Second {
		t.Errorf("market.timeout = %v, want 3s", cfg.Market.Timeout)
	}
	if len(cfg.Market.Tickers) != 2 {
		t.Errorf("market.tickers = %v", cfg.Market.Tickers)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("POSTGRES_HOST", "override.internal")
	t.Setenv("MARKET_TIMEOUT", "1s")

	cfg, err := Load(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Postgres.Host != "override.internal" {
		t.Errorf("postgres.host = %q, want env override", cfg.Postgres.Host)
	}
	if cfg.Market.Timeout != time.Second {
		t.Errorf("market.timeout = %v, want env override 1s", cfg.Market.Timeout)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	if _, err := Load(writeConfig(t, "market:\n  timeout: soon\n")); err == nil {
		t.Error("Load accepted an invalid duration")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestDSNHelpers(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dsn := cfg.PostgresDSN()
	if dsn != "host=db.internal port=5432 user=app password=secret dbname=pulseboard sslmode=disable" {
		t.Errorf("PostgresDSN() = %q", dsn)
	}
}
