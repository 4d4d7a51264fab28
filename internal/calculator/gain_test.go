package calculator

import (
	"errors"
	"testing"
	"time"

	"StockYTD/internal/model"

	"github.com/shopspring/decimal"
)

func history(symbol string, bars ...[2]float64) *model.PriceHistory {
	h := &model.PriceHistory{Symbol: symbol}
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, b := range bars {
		h.Bars = append(h.Bars, model.OHLCV{
			Time:  start.AddDate(0, 0, i),
			Open:  b[0],
			Close: b[1],
		})
	}
	return h
}

func TestYTDGain(t *testing.T) {
	tests := []struct {
		name string
		hist *model.PriceHistory
		want string
	}{
		{"rise", history("X", [2]float64{100, 104}, [2]float64{105, 110}), "10"},
		{"fall", history("X", [2]float64{200, 190}, [2]float64{170, 165}, [2]float64{160, 150}), "-25"},
		{"single day", history("X", [2]float64{50, 55}), "10"},
		{"flat", history("X", [2]float64{80, 81}, [2]float64{79, 80}), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := YTDGain(tt.hist)
			if err != nil {
				t.Fatalf("YTDGain: %v", err)
			}
			want := decimal.RequireFromString(tt.want)
			if !res.Percent.Equal(want) {
				t.Errorf("expected %s, got %s", want, res.Percent)
			}
		})
	}
}

func TestYTDGain_UsesFirstOpenAndLastClose(t *testing.T) {
	res, err := YTDGain(history("META", [2]float64{100, 999}, [2]float64{1, 2}, [2]float64{3, 110}))
	if err != nil {
		t.Fatalf("YTDGain: %v", err)
	}
	if res.Open != 100 || res.Close != 110 {
		t.Errorf("expected open 100 close 110, got open %v close %v", res.Open, res.Close)
	}
	if got := res.Line(); got != "META YTD Gain: 10.00%" {
		t.Errorf("Line() = %q", got)
	}
}

func TestYTDGain_NegativeLine(t *testing.T) {
	res, err := YTDGain(history("TSLA", [2]float64{200, 190}, [2]float64{160, 150}))
	if err != nil {
		t.Fatalf("YTDGain: %v", err)
	}
	if got := res.Line(); got != "TSLA YTD Gain: -25.00%" {
		t.Errorf("Line() = %q", got)
	}
}

func TestYTDGain_EmptyHistory(t *testing.T) {
	_, err := YTDGain(history("X"))
	if !errors.Is(err, model.ErrEmptyHistory) {
		t.Errorf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestYTDGain_ZeroOpen(t *testing.T) {
	_, err := YTDGain(history("X", [2]float64{0, 10}, [2]float64{10, 12}))
	if !errors.Is(err, model.ErrZeroOpen) {
		t.Errorf("expected ErrZeroOpen, got %v", err)
	}
}

func TestPercentChange_Rounding(t *testing.T) {
	pct, err := PercentChange(346.29, 474.99)
	if err != nil {
		t.Fatalf("PercentChange: %v", err)
	}
	if got := pct.StringFixed(2); got != "37.17" {
		t.Errorf("expected 37.17, got %s", got)
	}
}
