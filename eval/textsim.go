package eval

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// TextSimilarity compares two texts with a longest-matching-block sequence
// alignment over their runes: ratio = 2*M/T where M is the number of matching
// runes and T the combined length. Case-sensitive and order-sensitive.
//
// Metrics: similarity_ratio in [0, 1].
type TextSimilarity struct{}

func (s *TextSimilarity) Name() string { return "text_similarity" }

func (s *TextSimilarity) Compare(a, b string) (Metrics, error) {
	var ratio float64
	switch {
	case a == "" && b == "":
		ratio = 1.0
	case a == "" || b == "":
		ratio = 0.0
	default:
		matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
		ratio = matcher.Ratio()
	}
	return Metrics{"similarity_ratio": ratio}, nil
}
