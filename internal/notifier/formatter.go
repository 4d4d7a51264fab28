package notifier

import (
	"fmt"
	"math"
	"strings"

	"StockYTD/internal/model"

	"github.com/Rhymond/go-money"
)

// USD formats a price in US dollars, e.g. "$1,234.56".
func USD(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.USD).Display()
}

// FormatGainReport formats YTD gains into a Telegram message.
func FormatGainReport(results []*model.GainResult, r model.DateRange) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📈 <b>YTD Gain</b> | %s → %s\n\n",
		r.Start.Format(model.DateLayout), r.End.Format(model.DateLayout)))

	for _, res := range results {
		sign := ""
		if res.Percent.IsPositive() {
			sign = "+"
		}
		b.WriteString(fmt.Sprintf("<b>%s</b>: %s%s%%\n", res.Symbol, sign, res.Percent.StringFixed(2)))
		b.WriteString(fmt.Sprintf("   open %s → close %s\n", USD(res.Open), USD(res.Close)))
	}

	return b.String()
}
