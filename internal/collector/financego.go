package collector

import (
	"context"
	"fmt"
	"time"

	"StockYTD/internal/model"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// FinanceGoFetcher implements HistoryFetcher on top of piquette/finance-go,
// which talks to Yahoo Finance with its own client and session handling.
type FinanceGoFetcher struct{}

func NewFinanceGoFetcher() *FinanceGoFetcher { return &FinanceGoFetcher{} }

func (f *FinanceGoFetcher) Name() string { return "financego" }

func toDatetime(t time.Time) *datetime.Datetime {
	return &datetime.Datetime{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func barToOHLCV(b *finance.ChartBar) model.OHLCV {
	o, _ := b.Open.Float64()
	h, _ := b.High.Float64()
	l, _ := b.Low.Float64()
	c, _ := b.Close.Float64()
	return model.OHLCV{
		Time:   time.Unix(int64(b.Timestamp), 0).UTC(),
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: float64(b.Volume),
	}
}

func (f *FinanceGoFetcher) FetchHistory(ctx context.Context, symbol string, r model.DateRange) (*model.PriceHistory, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Interval: datetime.OneDay,
		Start:    toDatetime(r.Start),
		End:      toDatetime(r.EndExclusive()),
	}

	hist := &model.PriceHistory{Symbol: symbol}
	iter := chart.Get(params)
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hist.Bars = append(hist.Bars, barToOHLCV(iter.Bar()))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("financego chart %s: %w", symbol, err)
	}
	sortBars(hist.Bars)
	return hist, nil
}

func (f *FinanceGoFetcher) FetchBatch(ctx context.Context, symbols []string, r model.DateRange) (*model.PriceTable, error) {
	return BatchOf(f).FetchBatch(ctx, symbols, r)
}
