package clusterer

import (
	"fmt"
	"strings"

	"adgroup-go/pkg/taxonomy"
)

// KeywordRecord is a single keyword idea with its planner metrics. Records
// are engine input and are never mutated; numeric fields default to zero
// when the provider omits them.
type KeywordRecord struct {
	Text               string  `json:"keyword"`
	AvgMonthlySearches int64   `json:"avg_monthly_searches"`
	Competition        string  `json:"competition"`
	CompetitionIndex   int     `json:"competition_index"`
	LowTopOfPageBid    float64 `json:"low_top_of_page_bid"`
	HighTopOfPageBid   float64 `json:"high_top_of_page_bid"`
}

// Cluster is one ad group: a named, ordered set of keywords with coarse
// volume/competition tiers derived from member averages
type Cluster struct {
	Name            string          `json:"name"`
	Keywords        []KeywordRecord `json:"keywords"`
	VolumeTier      string          `json:"volume_tier"`
	CompetitionTier string          `json:"competition_tier"`
	NgramGroup      string          `json:"ngram_group"`
}

// Result is the output of one clustering invocation. Negative candidates
// are advisory: a flagged keyword still appears among some cluster's
// keywords. The list is deduplicated by {term, category} and lives on the
// result rather than on any single cluster.
type Result struct {
	Method             string           `json:"method"`
	Clusters           []Cluster        `json:"clusters"`
	NegativeCandidates []taxonomy.Match `json:"negative_candidates"`
}

// TotalKeywords returns the number of keywords assigned across all clusters
func (r *Result) TotalKeywords() int {
	total := 0
	for _, c := range r.Clusters {
		total += len(c.Keywords)
	}
	return total
}

// Method selects a clustering strategy
type Method string

const (
	MethodRuleBased Method = "rule"
	MethodSemantic  Method = "semantic"
	MethodHybrid    Method = "hybrid"
)

// ParseMethod maps user input to a Method. Accepts the method names and the
// legacy numeric selectors (1=rule, 2=semantic, 3=hybrid).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rule", "rule_based", "1":
		return MethodRuleBased, nil
	case "semantic", "ml", "2":
		return MethodSemantic, nil
	case "hybrid", "3":
		return MethodHybrid, nil
	default:
		return "", fmt.Errorf("unknown clustering method %q (expected rule, semantic or hybrid)", s)
	}
}
