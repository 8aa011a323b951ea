package config

import "time"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Market   MarketConfig   `yaml:"market"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeoutStr     string `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeoutStr    string `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeoutStr string `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`

	ReadTimeout     time.Duration `yaml:"-" ignored:"true"`
	WriteTimeout    time.Duration `yaml:"-" ignored:"true"`
	ShutdownTimeout time.Duration `yaml:"-" ignored:"true"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" envconfig:"POSTGRES_HOST"`
	Port     int    `yaml:"port" envconfig:"POSTGRES_PORT"`
	User     string `yaml:"user" envconfig:"POSTGRES_USER"`
	Password string `yaml:"password" envconfig:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" envconfig:"POSTGRES_DB"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"POSTGRES_SSLMODE"`
}

type RedisConfig struct {
	Host     string `yaml:"host" envconfig:"REDIS_HOST"`
	Port     int    `yaml:"port" envconfig:"REDIS_PORT"`
	Password string `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" envconfig:"REDIS_DB"`
}

// MarketConfig drives the fetch path: provider deadline and retries, cache
// TTL per data class, the websocket poll interval, and the ticker set the
// dashboard offers.
type MarketConfig struct {
	TimeoutStr      string   `yaml:"timeout" envconfig:"MARKET_TIMEOUT"`
	Retries         int      `yaml:"retries" envconfig:"MARKET_RETRIES"`
	QuoteTTLStr     string   `yaml:"quote_ttl" envconfig:"MARKET_QUOTE_TTL"`
	SeriesTTLStr    string   `yaml:"series_ttl" envconfig:"MARKET_SERIES_TTL"`
	PollIntervalStr string   `yaml:"poll_interval" envconfig:"MARKET_POLL_INTERVAL"`
	Tickers         []string `yaml:"tickers" envconfig:"MARKET_TICKERS"`

	Timeout      time.Duration `yaml:"-" ignored:"true"`
	QuoteTTL     time.Duration `yaml:"-" ignored:"true"`
	SeriesTTL    time.Duration `yaml:"-" ignored:"true"`
	PollInterval time.Duration `yaml:"-" ignored:"true"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}
