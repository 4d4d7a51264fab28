package main

import (
	"log"
	"os"

	"StockYTD/internal/collector"
	"StockYTD/internal/config"
	"StockYTD/internal/recorder"
)

// loadConfig reads and validates the configuration named by CONFIG_PATH.
func loadConfig() (*config.Config, error) {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	f, err := collector.New(cfg.DataSource.Provider, cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] data source: %s", f.Name())
	return f, nil
}

// newRecorder falls back to a no-op recorder when SQLite is not configured or fails to open.
func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}
