// Package report renders a calculation for download or copy-paste.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/breakeven-sim/simulator/internal/breakeven"
)

// NotComputable is printed in place of an infinite amount.
const NotComputable = "not computable"

const utf8BOM = "\ufeff"

// FormatAmount rounds to a whole number with thousands separators.
func FormatAmount(a breakeven.Amount) string {
	if !a.IsFinite() {
		return NotComputable
	}
	return humanize.Comma(int64(math.Round(a.Float())))
}

// FormatPercent prints a fraction as a percentage with one decimal.
func FormatPercent(fraction float64) string {
	if math.IsInf(fraction, 0) || math.IsNaN(fraction) {
		return NotComputable
	}
	return humanize.FtoaWithDigits(math.Round(fraction*1000)/10, 1) + "%"
}

// Rows returns the item/value table of a result.
func Rows(res breakeven.Result) [][]string {
	rows := [][]string{
		{"item", "value"},
		{"total fixed costs", FormatAmount(breakeven.Amount(res.TotalFixedCosts))},
		{"contribution margin", FormatPercent(res.ContributionMarginRate)},
		{"break-even monthly revenue", FormatAmount(res.BreakEvenMonthlyRevenue)},
		{"break-even daily revenue", FormatAmount(res.BreakEvenDailyRevenue)},
	}

	if res.TargetProfitMonthlyRevenue != nil && res.TargetProfitDailyRevenue != nil {
		rows = append(rows,
			[]string{"target profit monthly revenue", FormatAmount(*res.TargetProfitMonthlyRevenue)},
			[]string{"target profit daily revenue", FormatAmount(*res.TargetProfitDailyRevenue)},
		)
	}

	o := res.RequiredOrders
	rows = append(rows,
		[]string{"store orders (monthly)", FormatAmount(o.Store.Monthly)},
		[]string{"store orders (daily)", FormatAmount(o.Store.Daily)},
		[]string{"delivery orders (monthly)", FormatAmount(o.Delivery.Monthly)},
		[]string{"delivery orders (daily)", FormatAmount(o.Delivery.Daily)},
	)
	return rows
}

// WriteCSV writes Rows as CSV, prefixed with a UTF-8 byte order mark so
// spreadsheet software detects the encoding.
func WriteCSV(w io.Writer, res breakeven.Result) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write csv bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Rows(res)); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// Text renders a plain-text summary of the input and result.
func Text(in breakeven.Input, res breakeven.Result) string {
	var b strings.Builder

	b.WriteString("Break-even summary\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Open days per month: %d\n", in.OpenDays)
	fmt.Fprintf(&b, "Sales mix: store %s%%, delivery %s%%\n",
		humanize.Ftoa(in.SalesMix.StoreShare), humanize.Ftoa(in.SalesMix.DeliveryShare))
	fmt.Fprintf(&b, "Average order value: store %s, delivery %s\n",
		FormatAmount(breakeven.Amount(in.AOV.StoreAOV)), FormatAmount(breakeven.Amount(in.AOV.DeliveryAOV)))
	if in.HasTargetProfit() {
		fmt.Fprintf(&b, "Target profit: %s\n", FormatAmount(breakeven.Amount(*in.TargetProfit)))
	}
	b.WriteString("\n")

	for _, row := range Rows(res)[1:] {
		fmt.Fprintf(&b, "%-30s %s\n", row[0], row[1])
	}

	if c := res.Capacity; c != nil {
		b.WriteString("\nCapacity\n")
		if c.Store != nil {
			fmt.Fprintf(&b, "  store: %s (%s of seats, %s customers/day) %s\n",
				c.Store.Status, FormatPercent(c.Store.Occupancy),
				humanize.Comma(int64(math.Round(c.Store.RequiredCustomersPerDay))), c.Store.Message)
		}
		if c.Delivery != nil {
			fmt.Fprintf(&b, "  delivery: %s (%s orders/h of %s) %s\n",
				c.Delivery.Status,
				humanize.FtoaWithDigits(c.Delivery.RequiredOrdersPerHour, 1),
				humanize.FtoaWithDigits(c.Delivery.CapacityOrdersPerHour, 1),
				c.Delivery.Message)
		}
	}

	writeList(&b, "Errors", res.Errors)
	writeList(&b, "Warnings", res.Warnings)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
