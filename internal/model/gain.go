package model

import "github.com/shopspring/decimal"

// GainResult is the percentage change of one symbol between the open of its
// first trading day and the close of its last trading day.
type GainResult struct {
	Symbol  string
	Open    float64
	Close   float64
	Percent decimal.Decimal
}

// Line formats the result as printed by the ytd report.
func (g GainResult) Line() string {
	return g.Symbol + " YTD Gain: " + g.Percent.StringFixed(2) + "%"
}
