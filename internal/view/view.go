// Package view renders poller state into the text cards shown by the
// dashboard. Rendering is pure: the same state always yields the same card.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/quantfeed/tradeboard/internal/delta"
	"github.com/quantfeed/tradeboard/internal/model"
	"github.com/quantfeed/tradeboard/internal/poller"
)

// Badge maps a zero-based rank index to its display badge. The first three
// places get medal icons, everyone else a "#N" label.
func Badge(i int) string {
	switch i {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return "#" + strconv.Itoa(i+1)
	}
}

// TickerCard renders the live price card for one trading pair.
func TickerCard(s poller.State[model.PricePoint]) string {
	var b strings.Builder

	if s.Current == nil {
		if s.Err != "" {
			fmt.Fprintf(&b, "Live Price\n  error: %s\n", s.Err)
		} else {
			b.WriteString("Live Price\n  loading...\n")
		}
		return b.String()
	}

	cur := *s.Current

	var prevPrice *float64
	if s.Previous != nil {
		prevPrice = &s.Previous.Price
	}
	c := delta.Compute(prevPrice, cur.Price)

	fmt.Fprintf(&b, "%s  %s", cur.Symbol, delta.Amount(cur.Price))
	if s.Previous != nil {
		arrow := "▲"
		if !c.Positive {
			arrow = "▼"
		}
		fmt.Fprintf(&b, "  %s %s (%s%%)", arrow, delta.Amount(absFloat(c.Abs)), delta.Percent(c))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "  bid %s  ask %s\n", delta.Amount(cur.Bid), delta.Amount(cur.Ask))
	fmt.Fprintf(&b, "  high %s  low %s  vol %s\n", delta.Amount(cur.High), delta.Amount(cur.Low), delta.Amount(cur.Volume))

	// Last-known data stays on screen next to the error.
	if s.Err != "" {
		fmt.Fprintf(&b, "  error: %s\n", s.Err)
	}
	return b.String()
}

// LeaderboardCard renders the trader leaderboard in server order.
func LeaderboardCard(s poller.State[model.LeaderboardResponse]) string {
	var b strings.Builder
	b.WriteString("Top Traders\n")

	if s.Current == nil {
		if s.Err != "" {
			fmt.Fprintf(&b, "  error: %s\n", s.Err)
		} else {
			b.WriteString("  loading...\n")
		}
		return b.String()
	}

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Rank", "Trader", "ROI", "Portfolio"})

	// Server order is authoritative; rows are never re-sorted here.
	for i, t := range s.Current.TopTraders {
		table.Append([]string{
			Badge(i),
			t.Name,
			fmt.Sprintf("%+.2f%%", t.ROI),
			delta.Amount(t.PortfolioValue),
		})
	}
	table.Render()

	if s.Err != "" {
		fmt.Fprintf(&b, "  error: %s\n", s.Err)
	}
	return b.String()
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
