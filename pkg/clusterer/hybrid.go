package clusterer

import "context"

// hybridStrategy runs the rule-based pass and returns its result. This is
// an extension point: a later iteration may merge adjacent rule-based
// micro-clusters by semantic distance, which is why the strategy also holds
// the semantic clusterer. Today the refinement is intentionally absent.
type hybridStrategy struct {
	rule     Strategy
	semantic Strategy
}

func newHybridStrategy(rule, semantic Strategy) *hybridStrategy {
	return &hybridStrategy{rule: rule, semantic: semantic}
}

func (s *hybridStrategy) Name() string {
	return "hybrid"
}

func (s *hybridStrategy) Cluster(ctx context.Context, records []KeywordRecord) (*Result, error) {
	result, err := s.rule.Cluster(ctx, records)
	if err != nil {
		return nil, err
	}
	result.Method = s.Name()
	return result, nil
}
