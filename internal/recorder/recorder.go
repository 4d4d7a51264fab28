package recorder

// GainRecord holds one computed YTD gain.
type GainRecord struct {
	Symbol     string
	StartDate  string
	EndDate    string
	OpenPrice  float64
	ClosePrice float64
	GainPct    string // decimal string, full precision
}

// ChartRecord describes one rendered chart.
type ChartRecord struct {
	Tickers    []string
	StartDate  string
	EndDate    string
	OutputPath string
	Points     int
}

// Recorder persists produced results for later analysis.
// Nothing is ever read back from it.
type Recorder interface {
	RecordGain(rec *GainRecord) error
	RecordChart(rec *ChartRecord) error
	Close() error
}
