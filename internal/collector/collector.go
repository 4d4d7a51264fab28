package collector

import (
	"context"
	"fmt"
	"log"
	"sort"

	"StockYTD/internal/model"
)

// MemoryFetcher serves fixed bars from memory, for development and testing.
// Symbols absent from Bars are reported as unknown.
type MemoryFetcher struct {
	Bars map[string][]model.OHLCV
	// Calls records every symbol requested through FetchHistory, in order.
	Calls []string
}

func (m *MemoryFetcher) Name() string { return "memory" }

func (m *MemoryFetcher) FetchHistory(_ context.Context, symbol string, r model.DateRange) (*model.PriceHistory, error) {
	m.Calls = append(m.Calls, symbol)
	bars, ok := m.Bars[symbol]
	if !ok {
		return nil, fmt.Errorf("memory: unknown symbol %s", symbol)
	}
	hist := &model.PriceHistory{Symbol: symbol}
	for _, b := range bars {
		if r.Contains(b.Time) {
			hist.Bars = append(hist.Bars, b)
		}
	}
	sortBars(hist.Bars)
	return hist, nil
}

// FetchBatch returns the bars of every known symbol; unknown symbols are left
// out of the table rather than failing the call.
func (m *MemoryFetcher) FetchBatch(ctx context.Context, symbols []string, r model.DateRange) (*model.PriceTable, error) {
	table := model.NewPriceTable()
	for _, s := range symbols {
		if _, ok := m.Bars[s]; !ok {
			continue
		}
		hist, err := m.FetchHistory(ctx, s, r)
		if err != nil {
			return nil, err
		}
		table.Put(hist)
	}
	if table.Empty() {
		return nil, model.ErrNoData
	}
	return table, nil
}

// Batch adapts a per-symbol source to the batched call shape by fetching each
// symbol in turn and merging the results into one table.
type Batch struct {
	HistoryFetcher
}

// BatchOf wraps f so it can serve FetchBatch.
func BatchOf(f HistoryFetcher) *Batch {
	return &Batch{HistoryFetcher: f}
}

func (b *Batch) FetchBatch(ctx context.Context, symbols []string, r model.DateRange) (*model.PriceTable, error) {
	table := model.NewPriceTable()
	for _, s := range symbols {
		hist, err := b.FetchHistory(ctx, s, r)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", s, err)
		}
		if len(hist.Bars) == 0 {
			log.Printf("[WARN] %s: no bars in %s", s, r)
		}
		table.Put(hist)
	}
	if table.Empty() {
		return nil, model.ErrNoData
	}
	return table, nil
}

func sortBars(bars []model.OHLCV) {
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
}
