package model

import (
	"errors"
	"time"
)

var (
	// ErrEmptyHistory is returned when a price history holds no trading day.
	ErrEmptyHistory = errors.New("price history is empty")
	// ErrTickerMissing is returned when a price table has no column for a ticker.
	ErrTickerMissing = errors.New("ticker missing from price table")
	// ErrNoData is returned when a batch fetch yields no bar for any ticker.
	ErrNoData = errors.New("no price data returned")
	// ErrZeroOpen is returned when a gain is computed against an opening price of zero.
	ErrZeroOpen = errors.New("opening price is zero")
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceHistory holds the daily bars of one symbol in chronological order.
type PriceHistory struct {
	Symbol string
	Bars   []OHLCV
}

// FirstTradingDay returns the earliest bar of the history.
func (h *PriceHistory) FirstTradingDay() (OHLCV, error) {
	if h == nil || len(h.Bars) == 0 {
		return OHLCV{}, ErrEmptyHistory
	}
	return h.Bars[0], nil
}

// LastTradingDay returns the latest bar of the history.
func (h *PriceHistory) LastTradingDay() (OHLCV, error) {
	if h == nil || len(h.Bars) == 0 {
		return OHLCV{}, ErrEmptyHistory
	}
	return h.Bars[len(h.Bars)-1], nil
}

// ClosePoint is one (date, closing price) sample of a plotted series.
type ClosePoint struct {
	Time  time.Time
	Close float64
}

// PriceTable maps each ticker to its closing prices in chronological order.
type PriceTable struct {
	Closes map[string][]ClosePoint
}

// NewPriceTable returns an empty table.
func NewPriceTable() *PriceTable {
	return &PriceTable{Closes: make(map[string][]ClosePoint)}
}

// Put stores the closing prices of a history under its symbol.
func (t *PriceTable) Put(h *PriceHistory) {
	points := make([]ClosePoint, len(h.Bars))
	for i, b := range h.Bars {
		points[i] = ClosePoint{Time: b.Time, Close: b.Close}
	}
	t.Closes[h.Symbol] = points
}

// Series returns the closing prices of ticker.
func (t *PriceTable) Series(ticker string) ([]ClosePoint, error) {
	points, ok := t.Closes[ticker]
	if !ok {
		return nil, ErrTickerMissing
	}
	return points, nil
}

// Empty reports whether no ticker has a single point.
func (t *PriceTable) Empty() bool {
	for _, points := range t.Closes {
		if len(points) > 0 {
			return false
		}
	}
	return true
}
