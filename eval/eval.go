// Package eval implements the answer-comparison core: a set of interchangeable
// strategies that score a pair of response texts, and an Evaluator that runs
// every strategy over every unordered pair of providers' latest answers.
package eval

import (
	"errors"
	"fmt"
	"sort"

	"github.com/crosscheck-ai/crosscheck"
	"github.com/crosscheck-ai/crosscheck/slogger"
)

// ErrInsufficientData is returned when a comparison is requested with fewer
// than two recorded answers.
var ErrInsufficientData = errors.New("need answers from at least two providers to compare")

// Metrics holds one strategy's output as metric name to value. Values are
// numeric except where a metric is explicitly undefined (see WordCount).
type Metrics map[string]any

// Keys returns the metric names in sorted order for stable rendering.
func (m Metrics) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strategy scores a pair of texts. Implementations are stateless and pure;
// Compare must be safe to call concurrently.
type Strategy interface {
	// Name identifies the strategy in reports, e.g. "word_count".
	Name() string

	// Compare evaluates the two texts and returns the resulting metrics.
	Compare(a, b string) (Metrics, error)
}

// Report is the output of one strategy applied to one pair of responses.
type Report struct {
	Strategy  string  `json:"strategy"`
	ProviderA string  `json:"provider_a"`
	ProviderB string  `json:"provider_b"`
	Metrics   Metrics `json:"metrics"`
}

// DefaultStrategies returns the built-in strategies in their canonical order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		&WordCount{},
		&TextSimilarity{},
		&Semantic{},
	}
}

// Evaluator runs an ordered set of strategies pairwise across the latest
// answers. Strategy order is fixed at construction so output is reproducible
// given identical inputs.
type Evaluator struct {
	strategies []Strategy
	logger     slogger.Logger
}

type EvaluatorOptions struct {
	// Strategies to run, in order. Defaults to DefaultStrategies.
	Strategies []Strategy

	Logger slogger.Logger
}

func NewEvaluator(opts EvaluatorOptions) *Evaluator {
	strategies := opts.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	return &Evaluator{strategies: strategies, logger: logger}
}

// Strategies returns the evaluator's strategies in execution order.
func (e *Evaluator) Strategies() []Strategy {
	out := make([]Strategy, len(e.strategies))
	copy(out, e.strategies)
	return out
}

// CompareAll produces one report per strategy per unordered provider pair,
// providers in first-seen order and strategies in registration order. A
// failing strategy is logged and skipped; the remaining strategies still run.
// Returns ErrInsufficientData when fewer than two answers are recorded.
func (e *Evaluator) CompareAll(answers *crosscheck.LastAnswers) ([]*Report, error) {
	names := answers.Providers()
	if len(names) < 2 {
		return nil, fmt.Errorf("%w (have %d)", ErrInsufficientData, len(names))
	}

	var reports []*Report
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a := answers.Get(names[i])
			b := answers.Get(names[j])
			for _, strategy := range e.strategies {
				metrics, err := strategy.Compare(a.Text, b.Text)
				if err != nil {
					e.logger.Warn("comparison strategy failed",
						"strategy", strategy.Name(),
						"provider_a", names[i],
						"provider_b", names[j],
						"error", err)
					continue
				}
				reports = append(reports, &Report{
					Strategy:  strategy.Name(),
					ProviderA: names[i],
					ProviderB: names[j],
					Metrics:   metrics,
				})
			}
		}
	}
	return reports, nil
}
