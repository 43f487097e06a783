package eval

import (
	"math"
	"strings"
	"unicode"
)

// Semantic compares two texts by TF-IDF cosine similarity, treating the two
// texts as the entire corpus. Tokenization lowercases, splits on any rune
// that is not a letter or digit, and drops a fixed English stopword set, so
// the result is deterministic and locale-independent.
//
// IDF uses add-one smoothing in base 10: idf = 1 + log10((1+N)/(1+df)) with
// N=2. With only two documents the document frequency carries little signal;
// the smoothed base-10 form keeps shared and unique terms on comparable
// scales instead of letting a single unique term dominate the vectors.
//
// Metrics: cosine_similarity in [0, 1]; 0.0 when either vector has zero norm
// (empty text or all tokens removed as stopwords).
type Semantic struct{}

func (s *Semantic) Name() string { return "semantic_similarity" }

func (s *Semantic) Compare(a, b string) (Metrics, error) {
	tokensA := tokenize(a)
	tokensB := tokenize(b)

	vecA := tfidfVector(tokensA, tokensB)
	vecB := tfidfVector(tokensB, tokensA)

	return Metrics{"cosine_similarity": cosine(vecA, vecB)}, nil
}

// tokenize lowercases, splits on non-alphanumeric runes, and removes
// stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if !stopwords[field] {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// tfidfVector builds the TF-IDF vector for doc against the 2-document corpus
// {doc, other}.
func tfidfVector(doc, other []string) map[string]float64 {
	if len(doc) == 0 {
		return nil
	}

	counts := make(map[string]int, len(doc))
	for _, token := range doc {
		counts[token]++
	}
	otherTerms := make(map[string]bool, len(other))
	for _, token := range other {
		otherTerms[token] = true
	}

	const numDocs = 2
	vec := make(map[string]float64, len(counts))
	for term, count := range counts {
		df := 1
		if otherTerms[term] {
			df = 2
		}
		tf := float64(count) / float64(len(doc))
		idf := 1 + math.Log10(float64(1+numDocs)/float64(1+df))
		vec[term] = tf * idf
	}
	return vec
}

// cosine computes dot(a,b) / (||a|| * ||b||), clamped to [0, 1]. Zero-norm
// vectors yield 0.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, weight := range a {
		normA += weight * weight
		if otherWeight, ok := b[term]; ok {
			dot += weight * otherWeight
		}
	}
	for _, weight := range b {
		normB += weight * weight
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(1.0, math.Max(0.0, similarity))
}
