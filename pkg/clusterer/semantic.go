package clusterer

import (
	"context"
	"fmt"

	"adgroup-go/pkg/embedding"
	"adgroup-go/pkg/logger"
	"adgroup-go/pkg/taxonomy"
)

// Density clustering defaults: neighborhood radius in cosine distance and
// the minimum neighbor count for a dense point
const (
	DefaultEps       = 0.5
	DefaultMinPoints = 2
)

// semanticStrategy groups keywords by embedding them with a
// sentence-embedding model and density-clustering the vectors. The
// embedding capability loads lazily through the shared provider; when it
// cannot be loaded the strategy fails fast with embedding.ErrUnavailable
// instead of degrading to another method.
type semanticStrategy struct {
	tax       *taxonomy.Taxonomy
	provider  *embedding.Provider
	eps       float64
	minPoints int
	formatter *formatter
	log       *logger.Logger
}

func newSemanticStrategy(tax *taxonomy.Taxonomy, provider *embedding.Provider, eps float64, minPoints int, formatter *formatter) *semanticStrategy {
	if eps <= 0 {
		eps = DefaultEps
	}
	if minPoints <= 0 {
		minPoints = DefaultMinPoints
	}
	return &semanticStrategy{
		tax:       tax,
		provider:  provider,
		eps:       eps,
		minPoints: minPoints,
		formatter: formatter,
		log:       logger.GetLogger().WithField("component", "semantic_clusterer"),
	}
}

func (s *semanticStrategy) Name() string {
	return "semantic"
}

func (s *semanticStrategy) Cluster(ctx context.Context, records []KeywordRecord) (*Result, error) {
	// Negative flagging is advisory and never removes a keyword from
	// clustering
	negatives := collectNegatives(s.tax, records)

	encoder, err := s.provider.Get()
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}

	vectors, err := encoder.Encode(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("keyword embedding failed: %w", err)
	}
	if len(vectors) != len(records) {
		return nil, fmt.Errorf("encoder returned %d vectors for %d keywords", len(vectors), len(records))
	}

	labels := dbscanCosine(vectors, s.eps, s.minPoints)

	// Cluster boundaries depend on the model version, so make the run
	// attributable
	s.log.WithFields(map[string]interface{}{
		"model":      encoder.Model(),
		"eps":        s.eps,
		"min_points": s.minPoints,
		"keywords":   len(records),
	}).Info("Density clustering completed")

	groups := s.buildGroups(records, labels)
	return s.formatter.format(s.Name(), groups, negatives), nil
}

// buildGroups turns DBSCAN labels into raw clusters. Labeled groups are
// named after their shortest-text member; each outlier becomes its own
// singleton named after itself.
func (s *semanticStrategy) buildGroups(records []KeywordRecord, labels []int) []rawCluster {
	byLabel := make(map[int][]KeywordRecord)
	var labelOrder []int
	var outliers []KeywordRecord

	for i, label := range labels {
		if label == noiseLabel {
			outliers = append(outliers, records[i])
			continue
		}
		if _, ok := byLabel[label]; !ok {
			labelOrder = append(labelOrder, label)
		}
		byLabel[label] = append(byLabel[label], records[i])
	}

	groups := make([]rawCluster, 0, len(labelOrder)+len(outliers))
	for _, label := range labelOrder {
		members := byLabel[label]
		groups = append(groups, rawCluster{seed: shortestText(members), members: members})
	}
	for _, orphan := range outliers {
		groups = append(groups, rawCluster{seed: orphan.Text, members: []KeywordRecord{orphan}})
	}
	return groups
}

func shortestText(records []KeywordRecord) string {
	shortest := records[0].Text
	for _, rec := range records[1:] {
		if len(rec.Text) < len(shortest) {
			shortest = rec.Text
		}
	}
	return shortest
}
