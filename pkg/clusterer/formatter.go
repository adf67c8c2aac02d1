package clusterer

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"adgroup-go/pkg/taxonomy"
)

// formatter assembles the final Result: title-cased cluster names, stable
// size-descending ordering, tier annotation and negative-candidate
// aggregation
type formatter struct{}

func newFormatter() *formatter {
	return &formatter{}
}

func (f *formatter) format(method string, groups []rawCluster, negatives []taxonomy.Match) *Result {
	titleCaser := cases.Title(language.English)

	clusters := make([]Cluster, 0, len(groups))
	for _, g := range groups {
		clusters = append(clusters, Cluster{
			Name:     titleCaser.String(g.seed),
			Keywords: g.members,
		})
	}

	// Stable sort: equal member counts keep first-encountered order
	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].Keywords) > len(clusters[j].Keywords)
	})

	for i := range clusters {
		annotateTiers(&clusters[i])
	}

	return &Result{
		Method:             method,
		Clusters:           clusters,
		NegativeCandidates: dedupNegatives(negatives),
	}
}

// dedupNegatives removes repeated {term, category} pairs, keeping
// first-seen order
func dedupNegatives(matches []taxonomy.Match) []taxonomy.Match {
	deduped := make([]taxonomy.Match, 0, len(matches))
	seen := make(map[taxonomy.Match]bool, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		deduped = append(deduped, m)
	}
	return deduped
}
