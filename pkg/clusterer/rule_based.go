package clusterer

import (
	"context"
	"sort"

	"adgroup-go/pkg/logger"
	"adgroup-go/pkg/similarity"
	"adgroup-go/pkg/taxonomy"
)

// jaccardMergeThreshold is the word-overlap score above which a candidate
// joins the seed's cluster
const jaccardMergeThreshold = 0.6

// progressReportMin is the batch size from which the quadratic merge loop
// reports progress
const progressReportMin = 1000

// rawCluster is a pre-formatting group keyed by its seed keyword
type rawCluster struct {
	seed    string
	members []KeywordRecord
}

// ruleBasedStrategy groups keywords with deterministic lexical rules:
// a candidate joins a seed's cluster when it is a close variant of the seed
// or shares enough words with it. Comparison is always seed-vs-candidate,
// never candidate-vs-candidate; transitively related keywords that only
// resemble each other through an intermediate member stay apart.
type ruleBasedStrategy struct {
	tax       *taxonomy.Taxonomy
	formatter *formatter
	log       *logger.Logger
}

func newRuleBasedStrategy(tax *taxonomy.Taxonomy, formatter *formatter) *ruleBasedStrategy {
	return &ruleBasedStrategy{
		tax:       tax,
		formatter: formatter,
		log:       logger.GetLogger().WithField("component", "rule_based_clusterer"),
	}
}

func (s *ruleBasedStrategy) Name() string {
	return "rule_based"
}

func (s *ruleBasedStrategy) Cluster(ctx context.Context, records []KeywordRecord) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Shorter keywords make better cluster names, so they seed first.
	// The sort must be stable: equal lengths keep input order, which makes
	// repeated runs on identical input byte-identical.
	sorted := make([]KeywordRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Text) < len(sorted[j].Text)
	})

	assigned := make([]bool, len(sorted))
	var groups []rawCluster

	var progress *logger.ProgressReporter
	if len(sorted) >= progressReportMin {
		progress = logger.NewProgressReporter(len(sorted), "rule-based clustering")
	}

	for i := range sorted {
		if assigned[i] {
			continue
		}

		seed := sorted[i].Text
		group := rawCluster{seed: seed, members: []KeywordRecord{sorted[i]}}
		assigned[i] = true

		for j := i + 1; j < len(sorted); j++ {
			if assigned[j] {
				continue
			}
			candidate := sorted[j].Text
			if similarity.CloseVariant(seed, candidate) || similarity.Jaccard(seed, candidate) > jaccardMergeThreshold {
				group.members = append(group.members, sorted[j])
				assigned[j] = true
			}
		}

		groups = append(groups, group)
		if progress != nil {
			progress.Update(len(group.members))
		}
	}

	// Negative flagging is independent of grouping: flagged keywords keep
	// their cluster membership, the matches are advisory output only.
	negatives := collectNegatives(s.tax, records)

	s.log.WithFields(map[string]interface{}{
		"keywords":  len(records),
		"clusters":  len(groups),
		"negatives": len(negatives),
	}).Debug("Rule-based clustering completed")

	return s.formatter.format(s.Name(), groups, negatives), nil
}

// collectNegatives runs the taxonomy check over every keyword's raw text,
// in input order
func collectNegatives(tax *taxonomy.Taxonomy, records []KeywordRecord) []taxonomy.Match {
	var matches []taxonomy.Match
	for _, rec := range records {
		if ok, m := tax.Check(rec.Text); ok {
			matches = append(matches, m)
		}
	}
	return matches
}
