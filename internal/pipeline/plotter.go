package pipeline

import (
	"context"
	"fmt"
	"log"

	"StockYTD/internal/chart"
	"StockYTD/internal/collector"
	"StockYTD/internal/model"
	"StockYTD/internal/recorder"
)

const (
	chartTitle  = "Stock Price Change YTD"
	chartXLabel = "Date"
	chartYLabel = "Closing Price (USD)"
)

// NewDefaultChart returns the gonum chart used by the plot command.
func NewDefaultChart() chart.Chart {
	return chart.NewPriceChart(chartTitle, chartXLabel, chartYLabel)
}

// Plotter draws the closing prices of several tickers on one chart.
type Plotter struct {
	Fetcher  collector.BatchFetcher
	NewChart func() chart.Chart
	Recorder recorder.Recorder
	// Show opens the saved image after writing it.
	Show bool
}

// NewPlotter creates a Plotter drawing on the default chart.
func NewPlotter(fetcher collector.BatchFetcher, rec recorder.Recorder, show bool) *Plotter {
	return &Plotter{
		Fetcher:  fetcher,
		NewChart: NewDefaultChart,
		Recorder: rec,
		Show:     show,
	}
}

// Run fetches all tickers in one batch, draws one line per ticker in input
// order and saves the chart to outputPath, replacing any previous file.
func (p *Plotter) Run(ctx context.Context, tickers []string, r model.DateRange, outputPath string) (chart.Chart, error) {
	log.Printf("[INFO] plotting %v over %s via %s", tickers, r, p.Fetcher.Name())
	table, err := p.Fetcher.FetchBatch(ctx, tickers, r)
	if err != nil {
		return nil, fmt.Errorf("fetch batch: %w", err)
	}

	c := p.NewChart()
	total := 0
	for _, ticker := range tickers {
		points, err := table.Series(ticker)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ticker, err)
		}
		if err := c.AddSeries(ticker, points); err != nil {
			return nil, err
		}
		total += len(points)
	}

	if err := c.Save(outputPath); err != nil {
		return nil, err
	}
	log.Printf("[INFO] chart saved: %s (%d points)", outputPath, total)

	if err := p.Recorder.RecordChart(&recorder.ChartRecord{
		Tickers:    tickers,
		StartDate:  r.Start.Format(model.DateLayout),
		EndDate:    r.End.Format(model.DateLayout),
		OutputPath: outputPath,
		Points:     total,
	}); err != nil {
		log.Printf("[ERROR] record chart: %v", err)
	}

	if p.Show {
		if err := c.Show(outputPath); err != nil {
			log.Printf("[WARN] display chart: %v", err)
		}
	}
	return c, nil
}
