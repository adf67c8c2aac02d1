package service

import (
	"context"

	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/planner"
)

type IdeaService interface {
	FetchIdeas(ctx context.Context, req planner.IdeaRequest) ([]clusterer.KeywordRecord, error)
}

type ClusterService interface {
	Cluster(ctx context.Context, method clusterer.Method, records []clusterer.KeywordRecord) (*clusterer.Result, error)
}

type ExportService interface {
	Export(result *clusterer.Result) error
}
