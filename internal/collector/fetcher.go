package collector

import (
	"context"
	"fmt"

	"StockYTD/internal/model"
)

// HistoryFetcher fetches the daily bars of one symbol over a date range.
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, symbol string, r model.DateRange) (*model.PriceHistory, error)
	Name() string
}

// BatchFetcher fetches the closing prices of several symbols in one call.
type BatchFetcher interface {
	FetchBatch(ctx context.Context, symbols []string, r model.DateRange) (*model.PriceTable, error)
	Name() string
}

// Fetcher is a data source able to serve both call shapes.
type Fetcher interface {
	HistoryFetcher
	BatchFetcher
}

// Provider names accepted by New.
const (
	ProviderYahoo     = "yahoo"
	ProviderVsTrader  = "vstrader"
	ProviderFinanceGo = "financego"
)

// New builds the fetcher for the named provider.
func New(provider, baseURL, apiKey, proxyURL string) (Fetcher, error) {
	switch provider {
	case ProviderYahoo:
		return NewYahooFetcher(proxyURL), nil
	case ProviderVsTrader:
		if baseURL == "" {
			return nil, fmt.Errorf("provider %s requires a base url", provider)
		}
		return NewVsTraderFetcher(baseURL, apiKey, proxyURL), nil
	case ProviderFinanceGo:
		return NewFinanceGoFetcher(), nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", provider)
	}
}
