package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/embedding"
	"adgroup-go/pkg/export"
	"adgroup-go/pkg/logger"
	"adgroup-go/pkg/planner"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	// Environment variable defaults (CI friendly)
	defaultInput := getEnvOrDefault("KEYWORDS_FILE", "")
	defaultURL := getEnvOrDefault("TARGET_URL", "")
	defaultMethod := getEnvOrDefault("CLUSTER_METHOD", "rule")
	defaultOutputDir := getEnvOrDefault("OUTPUT_DIR", "reports")
	defaultPlannerURL := getEnvOrDefault("PLANNER_API_URL", "")
	defaultPlannerKey := getEnvOrDefault("PLANNER_API_KEY", "")
	defaultEmbedURL := getEnvOrDefault("EMBEDDING_API_URL", "")
	defaultEmbedModel := getEnvOrDefault("EMBEDDING_MODEL", embedding.DefaultModel)
	defaultTimeout := getEnvIntOrDefault("CLUSTER_TIMEOUT", 300)

	// Command line flags (override environment variables)
	var (
		input       = flag.String("input", defaultInput, "JSON file with keyword records (env: KEYWORDS_FILE)")
		targetURL   = flag.String("url", defaultURL, "Seed URL for the keyword-ideas provider (env: TARGET_URL)")
		seeds       = flag.String("seeds", "", "Comma-separated seed keywords for the provider")
		method      = flag.String("method", defaultMethod, "Clustering method: rule, semantic or hybrid (env: CLUSTER_METHOD)")
		outputDir   = flag.String("output-dir", defaultOutputDir, "Directory for report files (env: OUTPUT_DIR)")
		plannerURL  = flag.String("planner-url", defaultPlannerURL, "Keyword-ideas provider base URL (env: PLANNER_API_URL)")
		plannerKey  = flag.String("planner-api-key", defaultPlannerKey, "Keyword-ideas provider API key (env: PLANNER_API_KEY)")
		embedURL    = flag.String("embedding-url", defaultEmbedURL, "Embedding server base URL (env: EMBEDDING_API_URL)")
		embedModel  = flag.String("embedding-model", defaultEmbedModel, "Embedding model name (env: EMBEDDING_MODEL)")
		timeoutSecs = flag.Int("timeout", defaultTimeout, "Overall run timeout in seconds (env: CLUSTER_TIMEOUT)")
		debug       = flag.Bool("debug", os.Getenv("DEBUG") == "true", "Enable debug logging (env: DEBUG)")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	level := "info"
	if *debug {
		level = "debug"
	}
	logger.SetLogger(logger.New(logger.Config{Level: level, Format: "console", Output: "stdout"}))
	log := logger.GetLogger().WithField("component", "cli")

	if *input == "" && *targetURL == "" {
		fmt.Println("ERROR: Provide keyword input with -input or a seed URL with -url.")
		printUsage()
		os.Exit(1)
	}

	parsedMethod, err := clusterer.ParseMethod(*method)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSecs)*time.Second)
	defer cancel()

	records, err := loadRecords(ctx, *input, *targetURL, *seeds, *plannerURL, *plannerKey)
	if err != nil {
		log.WithError(err).Fatal("Failed to load keyword records")
	}
	log.WithField("keywords", len(records)).Info("Keyword records loaded")

	provider := embedding.NewProvider(func() (embedding.Encoder, error) {
		return embedding.NewOllamaEncoder(embedding.OllamaConfig{
			BaseURL: *embedURL,
			Model:   *embedModel,
		})
	})

	engine := clusterer.NewEngine(clusterer.Options{Encoder: provider})

	start := time.Now()
	result, err := engine.Cluster(ctx, parsedMethod, records)
	if err != nil {
		log.WithError(err).Fatal("Clustering failed")
	}

	printResult(result, time.Since(start))

	exporter := export.NewReportExporter(*outputDir)
	if err := exporter.Export(result); err != nil {
		log.WithError(err).Fatal("Report export failed")
	}
	fmt.Printf("\nReports written to %s\n", *outputDir)
}

// loadRecords reads keyword records from a local JSON file or fetches them
// from the keyword-ideas provider
func loadRecords(ctx context.Context, input, targetURL, seeds, plannerURL, plannerKey string) ([]clusterer.KeywordRecord, error) {
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", input, err)
		}
		var records []clusterer.KeywordRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", input, err)
		}
		return records, nil
	}

	if plannerURL == "" {
		return nil, fmt.Errorf("fetching ideas for a URL needs -planner-url or PLANNER_API_URL")
	}

	client := planner.NewHTTPClient(planner.Config{BaseURL: plannerURL, APIKey: plannerKey})
	req := planner.IdeaRequest{URL: targetURL}
	if seeds != "" {
		for _, s := range strings.Split(seeds, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.SeedKeywords = append(req.SeedKeywords, s)
			}
		}
	}
	return client.GenerateIdeas(ctx, req)
}

// printResult shows the top ad groups and the negative candidates
func printResult(result *clusterer.Result, elapsed time.Duration) {
	fmt.Printf("\nClustered %d keywords into %d ad groups (%s, %s)\n\n",
		result.TotalKeywords(), len(result.Clusters), result.Method, elapsed.Round(time.Millisecond))

	shown := len(result.Clusters)
	if shown > 10 {
		shown = 10
	}
	for _, cluster := range result.Clusters[:shown] {
		preview := make([]string, 0, 3)
		for i, kw := range cluster.Keywords {
			if i >= 3 {
				break
			}
			preview = append(preview, kw.Text)
		}
		fmt.Printf("  %-40s %3d keywords  %-18s %s\n", cluster.Name, len(cluster.Keywords), cluster.VolumeTier, strings.Join(preview, ", "))
	}
	if len(result.Clusters) > shown {
		fmt.Printf("  ...and %d more ad groups\n", len(result.Clusters)-shown)
	}

	if len(result.NegativeCandidates) > 0 {
		fmt.Printf("\nNegative candidates (%d):\n", len(result.NegativeCandidates))
		for _, neg := range result.NegativeCandidates {
			fmt.Printf("  %-24s [%s]\n", neg.Term, neg.Category)
		}
	}
}

func printUsage() {
	fmt.Println("adgroup-go - keyword clustering for ad group planning")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  adgroup-go -input keywords.json [-method rule|semantic|hybrid]")
	fmt.Println("  adgroup-go -url https://example.com -planner-url https://ideas.example.com")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
