// Package delta computes and formats the change between a current and a
// previous observed value, feeding the up/down indicators on the dashboard.
package delta

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Change is the difference between two observed values.
type Change struct {
	Abs      float64 // current - previous
	Pct      float64 // Abs / previous * 100
	Positive bool    // Abs >= 0 counts as positive/unchanged
}

// printer renders en-US style numbers: "." decimal point, "," thousands.
var printer = message.NewPrinter(language.English)

// Compute derives the change from previous to current. A nil previous means
// no prior observation: zero change, positive sign, no indicator shown.
func Compute(previous *float64, current float64) Change {
	if previous == nil {
		return Change{Positive: true}
	}

	abs := current - *previous
	c := Change{
		Abs:      abs,
		Positive: abs >= 0,
	}
	if *previous != 0 {
		c.Pct = abs / *previous * 100
	}
	return c
}

// Percent formats the percentage change to exactly 2 decimal places,
// without a sign or percent symbol.
func Percent(c Change) string {
	return printer.Sprintf("%.2f", abs(c.Pct))
}

// Amount formats a currency-like value with exactly 2 decimal places and
// thousand separators ("51,000.50").
func Amount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
