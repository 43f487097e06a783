package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/crosscheck-ai/crosscheck/eval"
	"github.com/olekukonko/tablewriter"
)

// renderReports prints one table row per metric, grouped by strategy and
// provider pair in the evaluator's deterministic order.
func renderReports(w io.Writer, reports []*eval.Report) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Strategy", "Providers", "Metric", "Value"})
	for _, report := range reports {
		pair := fmt.Sprintf("%s vs %s", report.ProviderA, report.ProviderB)
		for _, key := range report.Metrics.Keys() {
			table.Append([]string{
				report.Strategy,
				pair,
				key,
				formatMetric(report.Metrics[key]),
			})
		}
	}
	table.Render()
}

func formatMetric(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', 4, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
