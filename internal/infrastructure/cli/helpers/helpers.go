// Package helpers holds rendering utilities shared by the REPL and the
// cobra subcommands.
package helpers

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/calcli/internal/domain"
)

// FormatResult renders a float the way results are shown to the user.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RenderHistory prints recorded calculations, one numbered line each.
func RenderHistory(out io.Writer, items []domain.Calculation) {
	if len(items) == 0 {
		fmt.Fprintln(out, "No history recorded yet.")
		return
	}
	for i, calc := range items {
		fmt.Fprintf(out, "%d. %s(%s, %s) = %s @ %s%s\n",
			i+1,
			calc.Operation,
			FormatResult(calc.A),
			FormatResult(calc.B),
			FormatResult(calc.Result),
			calc.Timestamp,
			relativeTime(calc.Timestamp))
	}
}

// relativeTime renders " (3 minutes ago)" when the timestamp parses.
func relativeTime(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", humanize.Time(t))
}

// RenderReport prints a doctor health report.
func RenderReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s: %s\n", check.Status, check.Name, check.Details)
	}
}
