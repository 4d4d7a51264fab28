package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"StockYTD/internal/collector"
	"StockYTD/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	OutputPath string   `yaml:"output_path"`
	ShowChart  *bool    `yaml:"show_chart"`
	DataSource struct {
		Provider string `yaml:"provider"`
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("START_DATE"); v != "" {
		cfg.StartDate = v
	}
	if v := os.Getenv("END_DATE"); v != "" {
		cfg.EndDate = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("SHOW_CHART"); v != "" {
		if show, err := strconv.ParseBool(v); err == nil {
			cfg.ShowChart = &show
		}
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("VSTRADER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VSTRADER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = collector.ProviderYahoo
		if cfg.DataSource.BaseURL != "" {
			cfg.DataSource.Provider = collector.ProviderVsTrader
		}
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "stock_price_ytd.png"
	}
	if cfg.ShowChart == nil {
		show := true
		cfg.ShowChart = &show
	}

	return cfg, nil
}

func splitTickers(v string) []string {
	var tickers []string
	for _, t := range strings.Split(v, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers is required")
	}
	if c.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	if c.EndDate == "" {
		return fmt.Errorf("end_date is required")
	}
	if _, err := c.Range(); err != nil {
		return err
	}
	switch c.DataSource.Provider {
	case collector.ProviderYahoo, collector.ProviderFinanceGo:
	case collector.ProviderVsTrader:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for provider vstrader")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// Range returns the configured date range.
func (c *Config) Range() (model.DateRange, error) {
	return model.ParseDateRange(c.StartDate, c.EndDate)
}

// TelegramEnabled reports whether reports should be sent to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
