package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/logger"
)

// ReportExporter writes clustering results to local report artifacts: an
// ad-group CSV, a negative-candidates CSV and a JSON summary
type ReportExporter struct {
	outputDir string
	log       *logger.Logger
}

// NewReportExporter creates an exporter rooted at outputDir
func NewReportExporter(outputDir string) *ReportExporter {
	return &ReportExporter{
		outputDir: outputDir,
		log:       logger.GetLogger().WithField("component", "report_exporter"),
	}
}

// Export writes all report files for one clustering result
func (e *ReportExporter) Export(result *clusterer.Result) error {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := e.exportAdGroups(result); err != nil {
		return fmt.Errorf("failed to export ad groups: %w", err)
	}
	if err := e.exportNegatives(result); err != nil {
		return fmt.Errorf("failed to export negative candidates: %w", err)
	}
	if err := e.exportSummary(result); err != nil {
		return fmt.Errorf("failed to export summary: %w", err)
	}

	e.log.WithFields(map[string]interface{}{
		"output_dir": e.outputDir,
		"clusters":   len(result.Clusters),
	}).Info("Cluster report exported")
	return nil
}

// exportAdGroups writes one row per keyword with its ad group and tiers
func (e *ReportExporter) exportAdGroups(result *clusterer.Result) error {
	file, err := os.Create(filepath.Join(e.outputDir, "ad_groups.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"Ad Group", "Keyword", "Avg Monthly Searches", "Competition",
		"Competition Index", "Low Bid", "High Bid",
		"Volume Tier", "Competition Tier", "N-gram Group",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, cluster := range result.Clusters {
		for _, kw := range cluster.Keywords {
			row := []string{
				cluster.Name,
				kw.Text,
				strconv.FormatInt(kw.AvgMonthlySearches, 10),
				kw.Competition,
				strconv.Itoa(kw.CompetitionIndex),
				strconv.FormatFloat(kw.LowTopOfPageBid, 'f', 2, 64),
				strconv.FormatFloat(kw.HighTopOfPageBid, 'f', 2, 64),
				cluster.VolumeTier,
				cluster.CompetitionTier,
				cluster.NgramGroup,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// exportNegatives writes the aggregated negative candidates
func (e *ReportExporter) exportNegatives(result *clusterer.Result) error {
	file, err := os.Create(filepath.Join(e.outputDir, "negative_candidates.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Term", "Category"}); err != nil {
		return err
	}
	for _, neg := range result.NegativeCandidates {
		if err := w.Write([]string{neg.Term, neg.Category}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// exportSummary writes a machine-readable run summary
func (e *ReportExporter) exportSummary(result *clusterer.Result) error {
	type clusterSummary struct {
		Name            string `json:"name"`
		Keywords        int    `json:"keywords"`
		VolumeTier      string `json:"volume_tier"`
		CompetitionTier string `json:"competition_tier"`
	}

	summary := map[string]interface{}{
		"method":              result.Method,
		"export_time":         time.Now().Format(time.RFC3339),
		"total_clusters":      len(result.Clusters),
		"total_keywords":      result.TotalKeywords(),
		"negative_candidates": result.NegativeCandidates,
	}

	top := make([]clusterSummary, 0, 10)
	for i, c := range result.Clusters {
		if i >= 10 {
			break
		}
		top = append(top, clusterSummary{
			Name:            c.Name,
			Keywords:        len(c.Keywords),
			VolumeTier:      c.VolumeTier,
			CompetitionTier: c.CompetitionTier,
		})
	}
	summary["top_clusters"] = top

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(e.outputDir, "summary.json"), data, 0644)
}
