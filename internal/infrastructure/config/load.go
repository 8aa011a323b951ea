package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file, then overlays environment variables
// (loading a .env file first if one exists). Env vars win over the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// .env is optional; absence is the normal case outside development.
	_ = godotenv.Load()

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeoutStr = "10s"
	cfg.Server.WriteTimeoutStr = "10s"
	cfg.Server.ShutdownTimeoutStr = "30s"
	cfg.Postgres.SSLMode = "disable"
	cfg.Market.TimeoutStr = "5s"
	cfg.Market.Retries = 2
	cfg.Market.QuoteTTLStr = "1m"
	cfg.Market.SeriesTTLStr = "15m"
	cfg.Market.PollIntervalStr = "5s"
	cfg.Market.Tickers = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA"}
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

func (c *Config) parseDurations() error {
	pairs := []struct {
		name string
		src  string
		dst  *time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeoutStr, &c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeoutStr, &c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeoutStr, &c.Server.ShutdownTimeout},
		{"market.timeout", c.Market.TimeoutStr, &c.Market.Timeout},
		{"market.quote_ttl", c.Market.QuoteTTLStr, &c.Market.QuoteTTL},
		{"market.series_ttl", c.Market.SeriesTTLStr, &c.Market.SeriesTTL},
		{"market.poll_interval", c.Market.PollIntervalStr, &c.Market.PollInterval},
	}

	for _, p := range pairs {
		d, err := time.ParseDuration(p.src)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", p.name, err)
		}
		*p.dst = d
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host, c.Postgres.Port, c.Postgres.User,
		c.Postgres.Password, c.Postgres.Database, c.Postgres.SSLMode,
	)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
