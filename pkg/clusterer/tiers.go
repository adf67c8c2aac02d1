package clusterer

import "strings"

// Tier labels for cluster reporting. Thresholds compare the
// integer-truncated mean of the member metrics.
const (
	VolumeTierHigh   = "High (500K+)"
	VolumeTierMedium = "Medium (10K-100K)"
	VolumeTierLow    = "Low (<10K)"

	CompetitionTierHigh   = "High (67-100)"
	CompetitionTierMedium = "Medium (34-66)"
	CompetitionTierLow    = "Low (0-33)"
)

// VolumeTier buckets a mean monthly search volume
func VolumeTier(meanSearches int64) string {
	switch {
	case meanSearches >= 500000:
		return VolumeTierHigh
	case meanSearches >= 10000:
		return VolumeTierMedium
	default:
		return VolumeTierLow
	}
}

// CompetitionTier buckets a mean competition index
func CompetitionTier(meanIndex int64) string {
	switch {
	case meanIndex >= 67:
		return CompetitionTierHigh
	case meanIndex >= 34:
		return CompetitionTierMedium
	default:
		return CompetitionTierLow
	}
}

// NgramGroup derives the dominant n-gram pattern from a cluster name: the
// single token for one-word names, otherwise the first two tokens joined by
// an underscore
func NgramGroup(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		return words[0]
	}
	return words[0] + "_" + words[1]
}

// annotateTiers fills the tier fields from member averages. Clusters with
// no members are left unannotated.
func annotateTiers(c *Cluster) {
	count := int64(len(c.Keywords))
	if count == 0 {
		return
	}

	var totalVolume, totalCompetition int64
	for _, kw := range c.Keywords {
		totalVolume += kw.AvgMonthlySearches
		totalCompetition += int64(kw.CompetitionIndex)
	}

	// Integer division truncates the mean before the threshold comparison
	c.VolumeTier = VolumeTier(totalVolume / count)
	c.CompetitionTier = CompetitionTier(totalCompetition / count)
	c.NgramGroup = NgramGroup(c.Name)
}
