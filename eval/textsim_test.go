package eval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextSimilarityIdentity(t *testing.T) {
	s := &TextSimilarity{}
	for _, text := range []string{"x", "The quick brown fox", "multi\nline\ntext"} {
		metrics, err := s.Compare(text, text)
		require.NoError(t, err)
		require.InDelta(t, 1.0, metrics["similarity_ratio"], 1e-9)
	}
}

func TestTextSimilarityEmptyInputs(t *testing.T) {
	s := &TextSimilarity{}

	metrics, err := s.Compare("", "")
	require.NoError(t, err)
	require.InDelta(t, 1.0, metrics["similarity_ratio"], 1e-9)

	metrics, err = s.Compare("x", "")
	require.NoError(t, err)
	require.InDelta(t, 0.0, metrics["similarity_ratio"], 1e-9)

	metrics, err = s.Compare("", "x")
	require.NoError(t, err)
	require.InDelta(t, 0.0, metrics["similarity_ratio"], 1e-9)
}

func TestTextSimilarityHighOverlap(t *testing.T) {
	s := &TextSimilarity{}
	metrics, err := s.Compare("The quick brown fox", "The quick brown fox jumps")
	require.NoError(t, err)

	ratio := metrics["similarity_ratio"].(float64)
	require.Greater(t, ratio, 0.8)
	require.Less(t, ratio, 1.0)
}

func TestTextSimilarityCaseSensitive(t *testing.T) {
	s := &TextSimilarity{}
	metrics, err := s.Compare("HELLO WORLD", "hello world")
	require.NoError(t, err)
	require.Less(t, metrics["similarity_ratio"].(float64), 1.0)
}

func TestTextSimilarityDisjoint(t *testing.T) {
	s := &TextSimilarity{}
	metrics, err := s.Compare("aaaa", "bbbb")
	require.NoError(t, err)
	require.InDelta(t, 0.0, metrics["similarity_ratio"], 1e-9)
}
