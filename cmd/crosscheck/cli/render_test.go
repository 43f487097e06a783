package cli

import (
	"bytes"
	"testing"

	"github.com/crosscheck-ai/crosscheck/eval"
	"github.com/stretchr/testify/require"
)

func TestRenderReports(t *testing.T) {
	reports := []*eval.Report{
		{
			Strategy:  "word_count",
			ProviderA: "openai",
			ProviderB: "groq",
			Metrics: eval.Metrics{
				"count_a":    4,
				"count_b":    5,
				"difference": 1,
				"ratio":      0.8,
			},
		},
		{
			Strategy:  "text_similarity",
			ProviderA: "openai",
			ProviderB: "groq",
			Metrics:   eval.Metrics{"similarity_ratio": 0.8636},
		},
	}

	var buf bytes.Buffer
	renderReports(&buf, reports)
	out := buf.String()

	require.Contains(t, out, "word_count")
	require.Contains(t, out, "text_similarity")
	require.Contains(t, out, "openai vs groq")
	require.Contains(t, out, "0.8000")
	require.Contains(t, out, "0.8636")
}

func TestFormatMetric(t *testing.T) {
	require.Equal(t, "0.8000", formatMetric(0.8))
	require.Equal(t, "4", formatMetric(4))
	require.Equal(t, "undefined", formatMetric("undefined"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	got := truncate("a much longer string than the width allows", 10)
	require.LessOrEqual(t, len([]rune(got)), 11)
	require.Contains(t, got, "…")
}
