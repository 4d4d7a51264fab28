package main

import (
	"context"
	"flag"
	"log"
	"os"

	"StockYTD/internal/notifier"
	"StockYTD/internal/pipeline"

	"github.com/google/subcommands"
)

type ytdCmd struct{}

func (*ytdCmd) Name() string     { return "ytd" }
func (*ytdCmd) Synopsis() string { return "print the YTD gain of the configured tickers" }
func (*ytdCmd) Usage() string {
	return `stockytd ytd

  Prints "<TICKER> YTD Gain: <value>%" for each configured ticker, comparing
  the open of the first trading day with the close of the last one.
`
}

func (*ytdCmd) SetFlags(_ *flag.FlagSet) {}

func (*ytdCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[ERROR] config: %v", err)
		return subcommands.ExitFailure
	}
	r, err := cfg.Range()
	if err != nil {
		log.Printf("[ERROR] config: %v", err)
		return subcommands.ExitFailure
	}
	fetcher, err := newFetcher(cfg)
	if err != nil {
		log.Printf("[ERROR] data source: %v", err)
		return subcommands.ExitFailure
	}
	rec := newRecorder(cfg)
	defer rec.Close()

	g := pipeline.NewGainReporter(fetcher, os.Stdout, rec, nil)
	if cfg.TelegramEnabled() {
		g.Notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}
	if _, err := g.Run(ctx, cfg.Tickers, r); err != nil {
		log.Printf("[ERROR] ytd: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
