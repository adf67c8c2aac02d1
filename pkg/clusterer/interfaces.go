package clusterer

import "context"

// Strategy groups keyword records into ad-group clusters. Implementations
// share one contract: records in, a partition of those records out. Every
// input keyword belongs to exactly one cluster; flagging a keyword as a
// negative candidate never removes it from clustering.
type Strategy interface {
	// Name identifies the strategy in results and logs
	Name() string

	// Cluster partitions records into named clusters
	Cluster(ctx context.Context, records []KeywordRecord) (*Result, error)
}
