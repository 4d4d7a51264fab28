package calculator

import (
	"fmt"

	"StockYTD/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange returns (close - open) / open * 100.
func PercentChange(open, close float64) (decimal.Decimal, error) {
	if open == 0 {
		return decimal.Zero, model.ErrZeroOpen
	}
	o := decimal.NewFromFloat(open)
	c := decimal.NewFromFloat(close)
	return c.Sub(o).Div(o).Mul(hundred), nil
}

// YTDGain computes the gain between the opening price of the first trading day
// and the closing price of the last trading day of the history.
func YTDGain(hist *model.PriceHistory) (*model.GainResult, error) {
	first, err := hist.FirstTradingDay()
	if err != nil {
		return nil, err
	}
	last, err := hist.LastTradingDay()
	if err != nil {
		return nil, err
	}
	pct, err := PercentChange(first.Open, last.Close)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", hist.Symbol, first.Time.Format(model.DateLayout), err)
	}
	return &model.GainResult{
		Symbol:  hist.Symbol,
		Open:    first.Open,
		Close:   last.Close,
		Percent: pct,
	}, nil
}
