package eval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordCountBasic(t *testing.T) {
	s := &WordCount{}
	metrics, err := s.Compare("The quick brown fox", "The quick brown fox jumps")
	require.NoError(t, err)

	require.Equal(t, 4, metrics["count_a"])
	require.Equal(t, 5, metrics["count_b"])
	require.Equal(t, 1, metrics["difference"])
	require.InDelta(t, 0.8, metrics["ratio"], 1e-9)
}

func TestWordCountDifferenceSymmetry(t *testing.T) {
	s := &WordCount{}
	ab, err := s.Compare("one two three", "four five")
	require.NoError(t, err)
	ba, err := s.Compare("four five", "one two three")
	require.NoError(t, err)

	require.Equal(t, ab["difference"], ba["difference"])
	// ratio is asymmetric
	require.InDelta(t, 1.5, ab["ratio"], 1e-9)
	require.InDelta(t, 2.0/3.0, ba["ratio"], 1e-9)
}

func TestWordCountUndefinedRatio(t *testing.T) {
	s := &WordCount{}
	metrics, err := s.Compare("some words here", "")
	require.NoError(t, err)

	require.Equal(t, 3, metrics["count_a"])
	require.Equal(t, 0, metrics["count_b"])
	require.Equal(t, 3, metrics["difference"])
	require.Equal(t, UndefinedRatio, metrics["ratio"])
}

func TestWordCountWhitespaceTokens(t *testing.T) {
	s := &WordCount{}
	metrics, err := s.Compare("  spaced\tout\nwords  ", "x")
	require.NoError(t, err)
	require.Equal(t, 3, metrics["count_a"])
	require.Equal(t, 1, metrics["count_b"])
}
