package planner

import (
	"context"

	"adgroup-go/pkg/clusterer"
)

// IdeaRequest asks the keyword-ideas provider for keyword suggestions
// seeded by a site URL and optional seed keywords
type IdeaRequest struct {
	URL          string   `json:"url"`
	SeedKeywords []string `json:"seed_keywords,omitempty"`
	LanguageCode string   `json:"language_code,omitempty"`
	LocationIDs  []string `json:"location_ids,omitempty"`
}

// Client fetches keyword ideas with planner metrics. Transient failures
// (network, quota) are retried here; the clustering engine never retries.
type Client interface {
	GenerateIdeas(ctx context.Context, req IdeaRequest) ([]clusterer.KeywordRecord, error)
}
