package eval

import "strings"

// UndefinedRatio is reported in place of a numeric ratio when the second
// text has zero words. A division-by-zero never surfaces as an error or a
// non-finite float (which would not survive JSON encoding).
const UndefinedRatio = "undefined"

// WordCount compares two texts by their whitespace-delimited word counts.
//
// Metrics: count_a, count_b, difference (symmetric), ratio (count_a/count_b,
// asymmetric, UndefinedRatio when count_b is zero).
type WordCount struct{}

func (s *WordCount) Name() string { return "word_count" }

func (s *WordCount) Compare(a, b string) (Metrics, error) {
	countA := len(strings.Fields(a))
	countB := len(strings.Fields(b))

	difference := countA - countB
	if difference < 0 {
		difference = -difference
	}

	metrics := Metrics{
		"count_a":    countA,
		"count_b":    countB,
		"difference": difference,
	}
	if countB > 0 {
		metrics["ratio"] = float64(countA) / float64(countB)
	} else {
		metrics["ratio"] = UndefinedRatio
	}
	return metrics, nil
}
