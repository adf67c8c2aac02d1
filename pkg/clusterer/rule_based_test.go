package clusterer

import (
	"context"
	"reflect"
	"testing"
)

func ruleEngine() *Engine {
	return NewEngine(Options{})
}

func netflixRecords() []KeywordRecord {
	return []KeywordRecord{
		{Text: "netflix login", AvgMonthlySearches: 1000},
		{Text: "netflix sign in", AvgMonthlySearches: 800},
		{Text: "netflix log in", AvgMonthlySearches: 500},
		{Text: "netflix hiring", AvgMonthlySearches: 100},
		{Text: "apple watch", AvgMonthlySearches: 2000},
	}
}

func findCluster(t *testing.T, result *Result, name string) *Cluster {
	t.Helper()
	for i := range result.Clusters {
		if result.Clusters[i].Name == name {
			return &result.Clusters[i]
		}
	}
	t.Fatalf("No cluster named %q in %v", name, clusterNames(result))
	return nil
}

func clusterNames(result *Result) []string {
	names := make([]string, 0, len(result.Clusters))
	for _, c := range result.Clusters {
		names = append(names, c.Name)
	}
	return names
}

func memberTexts(result *Result) map[string]int {
	counts := make(map[string]int)
	for _, c := range result.Clusters {
		for _, kw := range c.Keywords {
			counts[kw.Text]++
		}
	}
	return counts
}

func TestRuleBased_NetflixScenario(t *testing.T) {
	engine := ruleEngine()

	result, err := engine.Cluster(context.Background(), MethodRuleBased, netflixRecords())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Close variant merges into the shortest-seed cluster
	login := findCluster(t, result, "Netflix Login")
	if len(login.Keywords) != 2 {
		t.Fatalf("Expected 2 keywords in Netflix Login, got %d", len(login.Keywords))
	}
	if login.Keywords[0].Text != "netflix login" || login.Keywords[1].Text != "netflix log in" {
		t.Errorf("Unexpected Netflix Login members: %+v", login.Keywords)
	}

	// Single-link against the seed only: "netflix sign in" resembles
	// neither seed closely enough, so it stays its own ad group
	signIn := findCluster(t, result, "Netflix Sign In")
	if len(signIn.Keywords) != 1 {
		t.Errorf("Expected singleton Netflix Sign In, got %d members", len(signIn.Keywords))
	}

	// Flagged keyword still appears among cluster members
	hiring := findCluster(t, result, "Netflix Hiring")
	if len(hiring.Keywords) != 1 {
		t.Errorf("Expected singleton Netflix Hiring, got %d members", len(hiring.Keywords))
	}

	watch := findCluster(t, result, "Apple Watch")
	if len(watch.Keywords) != 1 {
		t.Errorf("Expected singleton Apple Watch, got %d members", len(watch.Keywords))
	}

	// The hiring keyword produces the job annotation on the result
	foundJob := false
	for _, neg := range result.NegativeCandidates {
		if neg.Term == "hiring" && neg.Category == "job" {
			foundJob = true
		}
	}
	if !foundJob {
		t.Errorf("Expected negative candidate {hiring, job}, got %+v", result.NegativeCandidates)
	}

	// Largest cluster first
	if result.Clusters[0].Name != "Netflix Login" {
		t.Errorf("Expected Netflix Login first, got %v", clusterNames(result))
	}
}

func TestRuleBased_Partition(t *testing.T) {
	engine := ruleEngine()
	records := netflixRecords()

	result, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	counts := memberTexts(result)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != len(records) {
		t.Fatalf("Expected %d keywords across clusters, got %d", len(records), total)
	}
	for _, rec := range records {
		if counts[rec.Text] != 1 {
			t.Errorf("Expected %q exactly once, got %d", rec.Text, counts[rec.Text])
		}
	}
}

func TestRuleBased_DuplicateTexts(t *testing.T) {
	engine := ruleEngine()
	records := []KeywordRecord{
		{Text: "netflix login"},
		{Text: "netflix login"},
		{Text: "netflix login"},
	}

	result, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Identical text has jaccard 1.0, so everything merges into one cluster
	if len(result.Clusters) != 1 {
		t.Fatalf("Expected 1 cluster for identical texts, got %d", len(result.Clusters))
	}
	if len(result.Clusters[0].Keywords) != 3 {
		t.Errorf("Expected all 3 duplicates kept as members, got %d", len(result.Clusters[0].Keywords))
	}
}

func TestRuleBased_SingleItem(t *testing.T) {
	engine := ruleEngine()

	result, err := engine.Cluster(context.Background(), MethodRuleBased, []KeywordRecord{{Text: "netflix login"}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result.Clusters) != 1 || len(result.Clusters[0].Keywords) != 1 {
		t.Fatalf("Expected one singleton cluster, got %+v", result.Clusters)
	}
	if result.Clusters[0].Name != "Netflix Login" {
		t.Errorf("Expected title-cased name, got %q", result.Clusters[0].Name)
	}
}

func TestRuleBased_NegativeKeywordStillClustered(t *testing.T) {
	engine := ruleEngine()
	records := []KeywordRecord{
		{Text: "accessibility hiring"},
		{Text: "accessibility software"},
	}

	result, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	counts := memberTexts(result)
	if counts["accessibility hiring"] != 1 {
		t.Error("Expected flagged keyword to stay among cluster members")
	}
	if len(result.NegativeCandidates) == 0 {
		t.Fatal("Expected a negative candidate for 'hiring'")
	}
	if result.NegativeCandidates[0].Term != "hiring" || result.NegativeCandidates[0].Category != "job" {
		t.Errorf("Unexpected negative candidate: %+v", result.NegativeCandidates[0])
	}
}

func TestRuleBased_Idempotence(t *testing.T) {
	engine := ruleEngine()
	records := netflixRecords()

	first, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	second, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results across runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRuleBased_StableSeedOrder(t *testing.T) {
	engine := ruleEngine()

	// Equal-length unrelated keywords: the stable sort keeps input order,
	// so seeds and cluster order are deterministic
	records := []KeywordRecord{
		{Text: "red shoes"},
		{Text: "blue cars"},
		{Text: "late taxi"},
	}

	result, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"Red Shoes", "Blue Cars", "Late Taxi"}
	if !reflect.DeepEqual(clusterNames(result), want) {
		t.Errorf("Expected cluster order %v, got %v", want, clusterNames(result))
	}
}
