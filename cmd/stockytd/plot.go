package main

import (
	"context"
	"flag"
	"log"

	"StockYTD/internal/pipeline"

	"github.com/google/subcommands"
)

type plotCmd struct{}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "plot closing prices of the configured tickers" }
func (*plotCmd) Usage() string {
	return `stockytd plot

  Fetches daily closing prices of the configured tickers over the configured
  date range, draws one line per ticker and saves the chart to output_path.
`
}

func (*plotCmd) SetFlags(_ *flag.FlagSet) {}

func (*plotCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p := pipeline.NewPlotter(fetcher, rec, *cfg.ShowChart)
	if _, err := p.Run(ctx, cfg.Tickers, r, cfg.OutputPath); err != nil {
		log.Printf("[ERROR] plot: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
