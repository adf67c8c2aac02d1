package clusterer

import (
	"context"
	"reflect"
	"testing"
)

func TestHybrid_PassthroughOfRuleBased(t *testing.T) {
	engine := ruleEngine()
	records := netflixRecords()

	rule, err := engine.Cluster(context.Background(), MethodRuleBased, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	hybrid, err := engine.Cluster(context.Background(), MethodHybrid, records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if hybrid.Method != "hybrid" {
		t.Errorf("Expected method 'hybrid', got %q", hybrid.Method)
	}
	if !reflect.DeepEqual(hybrid.Clusters, rule.Clusters) {
		t.Errorf("Expected hybrid clusters identical to rule-based:\nrule:   %+v\nhybrid: %+v", rule.Clusters, hybrid.Clusters)
	}
	if !reflect.DeepEqual(hybrid.NegativeCandidates, rule.NegativeCandidates) {
		t.Errorf("Expected identical negative candidates")
	}
}

func TestHybrid_NoEncoderNeeded(t *testing.T) {
	// Hybrid must not touch the embedding capability today
	engine := NewEngine(Options{})

	if _, err := engine.Cluster(context.Background(), MethodHybrid, netflixRecords()); err != nil {
		t.Fatalf("Expected hybrid to work without an encoder, got: %v", err)
	}
}
