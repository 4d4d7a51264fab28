package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"StockYTD/internal/calculator"
	"StockYTD/internal/collector"
	"StockYTD/internal/model"
	"StockYTD/internal/notifier"
	"StockYTD/internal/recorder"
)

// Sender delivers a formatted report.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// GainReporter prints the YTD gain of each ticker.
type GainReporter struct {
	Fetcher  collector.HistoryFetcher
	Out      io.Writer
	Recorder recorder.Recorder
	// Notifier is optional; when set the full report is sent after all lines are printed.
	Notifier Sender
}

// NewGainReporter creates a GainReporter writing to out.
func NewGainReporter(fetcher collector.HistoryFetcher, out io.Writer, rec recorder.Recorder, n Sender) *GainReporter {
	return &GainReporter{Fetcher: fetcher, Out: out, Recorder: rec, Notifier: n}
}

// Run handles the tickers one after another in input order and writes one
// line per ticker. The first failure stops the run.
func (g *GainReporter) Run(ctx context.Context, tickers []string, r model.DateRange) ([]*model.GainResult, error) {
	results := make([]*model.GainResult, 0, len(tickers))
	for _, ticker := range tickers {
		res, err := g.gain(ctx, ticker, r)
		if err != nil {
			return results, err
		}
		if _, err := fmt.Fprintln(g.Out, res.Line()); err != nil {
			return results, fmt.Errorf("write report: %w", err)
		}
		results = append(results, res)
	}

	if g.Notifier != nil {
		if err := g.Notifier.SendWithRetry(ctx, notifier.FormatGainReport(results, r), 3); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
		}
	}
	return results, nil
}

func (g *GainReporter) gain(ctx context.Context, ticker string, r model.DateRange) (*model.GainResult, error) {
	hist, err := g.Fetcher.FetchHistory(ctx, ticker, r)
	if err != nil {
		return nil, fmt.Errorf("fetch history %s: %w", ticker, err)
	}
	res, err := calculator.YTDGain(hist)
	if err != nil {
		return nil, fmt.Errorf("ytd gain %s: %w", ticker, err)
	}
	log.Printf("[INFO] %s: %d trading days, open %s close %s",
		ticker, len(hist.Bars), notifier.USD(res.Open), notifier.USD(res.Close))

	if err := g.Recorder.RecordGain(&recorder.GainRecord{
		Symbol:     res.Symbol,
		StartDate:  r.Start.Format(model.DateLayout),
		EndDate:    r.End.Format(model.DateLayout),
		OpenPrice:  res.Open,
		ClosePrice: res.Close,
		GainPct:    res.Percent.String(),
	}); err != nil {
		log.Printf("[ERROR] record gain: %v", err)
	}
	return res, nil
}
