package chart

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"StockYTD/internal/model"
)

func points(closes ...float64) []model.ClosePoint {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	pts := make([]model.ClosePoint, len(closes))
	for i, c := range closes {
		pts[i] = model.ClosePoint{Time: start.AddDate(0, 0, i), Close: c}
	}
	return pts
}

func newTestChart() *PriceChart {
	return NewPriceChart("Stock Price Change YTD", "Date", "Closing Price (USD)")
}

func TestPriceChart_SaveWritesPNG(t *testing.T) {
	c := newTestChart()
	if err := c.AddSeries("META", points(346.29, 344.47, 347.12)); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	if err := c.AddSeries("TSLA", points(248.42, 238.45, 237.93)); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	path := filepath.Join(t.TempDir(), "stock_price_ytd.png")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width <= cfg.Height {
		t.Errorf("expected landscape image, got %dx%d", cfg.Width, cfg.Height)
	}
	if got := len(c.Series()); got != 2 {
		t.Errorf("expected 2 series, got %d", got)
	}
}

func TestPriceChart_EmptySeries(t *testing.T) {
	c := newTestChart()
	if err := c.AddSeries("META", nil); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	if err := c.Save(filepath.Join(t.TempDir(), "empty.png")); err != nil {
		t.Fatalf("Save with an empty line: %v", err)
	}
}

func TestPriceChart_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	big := newTestChart()
	many := make([]float64, 200)
	for i := range many {
		many[i] = float64(100 + i%17)
	}
	if err := big.AddSeries("META", points(many...)); err != nil {
		t.Fatal(err)
	}
	if err := big.Save(path); err != nil {
		t.Fatal(err)
	}

	small := func() *PriceChart {
		c := newTestChart()
		if err := c.AddSeries("TSLA", points(248.42, 238.45)); err != nil {
			t.Fatal(err)
		}
		return c
	}
	if err := small().Save(path); err != nil {
		t.Fatal(err)
	}
	fresh := filepath.Join(dir, "fresh.png")
	if err := small().Save(fresh); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(fresh)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("rerun left %d bytes, fresh render has %d", len(got), len(want))
	}
}

func TestPriceChart_SaveUnwritable(t *testing.T) {
	c := newTestChart()
	if err := c.Save(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPriceChart_Show(t *testing.T) {
	c := newTestChart()
	var opened string
	c.Open = func(path string) error {
		opened = path
		return nil
	}
	if err := c.Show("chart.png"); err != nil {
		t.Fatal(err)
	}
	if opened != "chart.png" {
		t.Errorf("opened %q", opened)
	}
}
