package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatUSD renders an amount the way the dashboard KPI cards show it:
// millions with one decimal and an M suffix, thousands rounded to a K
// suffix, everything else as rounded dollars.
//
// Display snapshots depend on these exact forms, treat them as part of
// the API contract.
func FormatUSD(amount decimal.Decimal) string {
	value := amount.InexactFloat64()

	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("$%.0fK", value/1_000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

// FormatPct renders a percentage with one decimal place.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
