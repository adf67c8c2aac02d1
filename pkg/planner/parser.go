package planner

import (
	"encoding/json"
	"fmt"

	"adgroup-go/pkg/clusterer"
)

// micros per currency unit in planner bid fields
const microsPerUnit = 1_000_000

// IdeasResponse is the raw keyword-ideas provider response
type IdeasResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Ideas   []struct {
		Keyword               string `json:"keyword"`
		AvgMonthlySearches    int64  `json:"avgMonthlySearches"`
		Competition           string `json:"competition"`
		CompetitionIndex      int    `json:"competitionIndex"`
		LowTopOfPageBidMicros int64  `json:"lowTopOfPageBidMicros"`
		HighTopOfPageBidMicro int64  `json:"highTopOfPageBidMicros"`
	} `json:"ideas"`
}

// ParseIdeas converts a provider response body into engine keyword records.
// Bid micros become decimal currency units; absent metrics stay zero.
func ParseIdeas(body []byte) ([]clusterer.KeywordRecord, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body from keyword-ideas provider")
	}

	var resp IdeasResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode keyword-ideas response: %w", err)
	}

	if !resp.Success {
		if resp.Error != "" {
			return nil, fmt.Errorf("keyword-ideas provider error: %s", resp.Error)
		}
		return nil, fmt.Errorf("keyword-ideas provider reported failure")
	}

	records := make([]clusterer.KeywordRecord, 0, len(resp.Ideas))
	for _, idea := range resp.Ideas {
		if idea.Keyword == "" {
			continue
		}
		records = append(records, clusterer.KeywordRecord{
			Text:               idea.Keyword,
			AvgMonthlySearches: idea.AvgMonthlySearches,
			Competition:        idea.Competition,
			CompetitionIndex:   idea.CompetitionIndex,
			LowTopOfPageBid:    float64(idea.LowTopOfPageBidMicros) / microsPerUnit,
			HighTopOfPageBid:   float64(idea.HighTopOfPageBidMicro) / microsPerUnit,
		})
	}

	return records, nil
}
