package clusterer

import (
	"context"
	"fmt"
	"strings"

	"adgroup-go/pkg/embedding"
	"adgroup-go/pkg/logger"
	"adgroup-go/pkg/taxonomy"
)

// Options configures an Engine. Zero values select the built-in taxonomy
// and the default density parameters; Encoder may stay nil when only the
// rule-based and hybrid methods are used.
type Options struct {
	Taxonomy  *taxonomy.Taxonomy
	Encoder   *embedding.Provider
	Eps       float64
	MinPoints int
}

// Engine is the clustering front door. It validates input, dispatches to
// the selected strategy and returns a fresh Result per invocation; no state
// survives between calls apart from the lazily initialized embedding
// capability held by the provider.
type Engine struct {
	strategies map[Method]Strategy
	log        *logger.Logger
}

// NewEngine builds an engine with all three strategies registered
func NewEngine(opts Options) *Engine {
	tax := opts.Taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}
	provider := opts.Encoder
	if provider == nil {
		provider = embedding.NewProvider(nil)
	}

	f := newFormatter()
	rule := newRuleBasedStrategy(tax, f)
	semantic := newSemanticStrategy(tax, provider, opts.Eps, opts.MinPoints, f)

	return &Engine{
		strategies: map[Method]Strategy{
			MethodRuleBased: rule,
			MethodSemantic:  semantic,
			MethodHybrid:    newHybridStrategy(rule, semantic),
		},
		log: logger.GetLogger().WithField("component", "clustering_engine"),
	}
}

// Cluster partitions records into ad groups using the given method. Records
// without text are skipped individually; an empty input yields an empty
// result, not an error.
func (e *Engine) Cluster(ctx context.Context, method Method, records []KeywordRecord) (*Result, error) {
	strategy, ok := e.strategies[method]
	if !ok {
		return nil, fmt.Errorf("unknown clustering method %q", method)
	}

	valid := validRecords(records)
	if skipped := len(records) - len(valid); skipped > 0 {
		e.log.WithField("skipped", skipped).Warn("Dropped keyword records with empty text")
	}

	if len(valid) == 0 {
		return &Result{
			Method:             strategy.Name(),
			Clusters:           []Cluster{},
			NegativeCandidates: []taxonomy.Match{},
		}, nil
	}

	return strategy.Cluster(ctx, valid)
}

// validRecords drops records whose text is empty or whitespace-only.
// Rejection is per record, never fatal to the batch.
func validRecords(records []KeywordRecord) []KeywordRecord {
	valid := make([]KeywordRecord, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" {
			continue
		}
		valid = append(valid, rec)
	}
	return valid
}
