package recorder

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRecorder_RecordGain(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer r.Close()

	recs := []*GainRecord{
		{Symbol: "META", StartDate: "2024-01-01", EndDate: "2024-02-05", OpenPrice: 351.32, ClosePrice: 474.99, GainPct: "35.2015"},
		{Symbol: "TSLA", StartDate: "2024-01-01", EndDate: "2024-02-05", OpenPrice: 250.08, ClosePrice: 181.06, GainPct: "-27.5991"},
	}
	for _, rec := range recs {
		if err := r.RecordGain(rec); err != nil {
			t.Fatalf("RecordGain: %v", err)
		}
	}

	rows, err := r.db.Query(`SELECT symbol, gain_pct FROM gain_results ORDER BY id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	var got []string
	for rows.Next() {
		var sym, pct string
		if err := rows.Scan(&sym, &pct); err != nil {
			t.Fatal(err)
		}
		got = append(got, sym+"="+pct)
	}
	if len(got) != 2 || got[0] != "META=35.2015" || got[1] != "TSLA=-27.5991" {
		t.Errorf("unexpected rows: %v", got)
	}
}

func TestSQLiteRecorder_RecordChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	if err := r.RecordChart(&ChartRecord{
		Tickers: []string{"META", "TSLA"}, StartDate: "2024-01-01", EndDate: "2024-02-05",
		OutputPath: "stock_price_ytd.png", Points: 48,
	}); err != nil {
		t.Fatalf("RecordChart: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening runs the migrations again and keeps existing rows.
	r, err = NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r.Close()
	var tickers string
	var points int
	if err := r.db.QueryRow(`SELECT tickers, points FROM chart_renders`).Scan(&tickers, &points); err != nil {
		t.Fatal(err)
	}
	if tickers != "META,TSLA" || points != 48 {
		t.Errorf("got tickers=%q points=%d", tickers, points)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.RecordGain(&GainRecord{Symbol: "X"}); err != nil {
		t.Error(err)
	}
	if err := r.RecordChart(&ChartRecord{}); err != nil {
		t.Error(err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}
