package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Symbol   string `yaml:"symbol"`
		Period   string `yaml:"period"`
		Interval string `yaml:"interval"`
		// CSVURL switches the fetcher to a generic CSV quote endpoint
		// instead of the Yahoo chart API.
		CSVURL string `yaml:"csv_url"`
	} `yaml:"data_source"`
	Signal struct {
		BuyBelow   float64 `yaml:"buy_below"`
		SellAbove  float64 `yaml:"sell_above"`
		NotifyHold *bool   `yaml:"notify_hold"`
	} `yaml:"signal"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; env-only operation is the common deployment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides. TELEGRAM_TOKEN is the historical
	// name; TELEGRAM_BOT_TOKEN is also accepted.
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("QUOTE_CSV_URL"); v != "" {
		cfg.DataSource.CSVURL = v
	}
	if v := os.Getenv("NOTIFY_HOLD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Signal.NotifyHold = &b
		}
	}
	if v := os.Getenv("DAILY_CRON"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "^NSEI"
	}
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "6mo"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1d"
	}
	if cfg.Signal.BuyBelow == 0 {
		cfg.Signal.BuyBelow = 30
	}
	if cfg.Signal.SellAbove == 0 {
		cfg.Signal.SellAbove = 70
	}

	return cfg, nil
}

// NotifyHold reports whether HOLD signals should still be notified.
// Defaults to true when unset.
func (c *Config) NotifyHold() bool {
	if c.Signal.NotifyHold == nil {
		return true
	}
	return *c.Signal.NotifyHold
}

// Validate checks threshold sanity. Telegram credentials are optional:
// their absence only disables the notifier's network path.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.Signal.BuyBelow >= c.Signal.SellAbove {
		return fmt.Errorf("signal.buy_below (%.1f) must be below signal.sell_above (%.1f)",
			c.Signal.BuyBelow, c.Signal.SellAbove)
	}
	return nil
}
