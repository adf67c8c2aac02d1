package planner

import "testing"

func TestParseIdeas_ValidResponse(t *testing.T) {
	body := []byte(`{
		"success": true,
		"ideas": [
			{
				"keyword": "netflix login",
				"avgMonthlySearches": 1000000,
				"competition": "HIGH",
				"competitionIndex": 85,
				"lowTopOfPageBidMicros": 1250000,
				"highTopOfPageBidMicros": 3500000
			},
			{
				"keyword": "netflix sign in",
				"avgMonthlySearches": 500000,
				"competition": "MEDIUM",
				"competitionIndex": 50
			}
		]
	}`)

	records, err := ParseIdeas(body)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Text != "netflix login" {
		t.Errorf("Unexpected keyword: %q", first.Text)
	}
	if first.AvgMonthlySearches != 1000000 {
		t.Errorf("Unexpected volume: %d", first.AvgMonthlySearches)
	}
	if first.CompetitionIndex != 85 {
		t.Errorf("Unexpected competition index: %d", first.CompetitionIndex)
	}
	if first.LowTopOfPageBid != 1.25 {
		t.Errorf("Expected bid micros converted to 1.25, got %v", first.LowTopOfPageBid)
	}
	if first.HighTopOfPageBid != 3.5 {
		t.Errorf("Expected bid micros converted to 3.5, got %v", first.HighTopOfPageBid)
	}

	// Absent metrics default to zero
	second := records[1]
	if second.LowTopOfPageBid != 0 || second.HighTopOfPageBid != 0 {
		t.Errorf("Expected zero bids for absent fields, got %+v", second)
	}
}

func TestParseIdeas_EmptyBody(t *testing.T) {
	if _, err := ParseIdeas(nil); err == nil {
		t.Error("Expected an error for empty body")
	}
}

func TestParseIdeas_ProviderFailure(t *testing.T) {
	body := []byte(`{"success": false, "error": "quota exceeded"}`)

	_, err := ParseIdeas(body)
	if err == nil {
		t.Fatal("Expected an error for failed response")
	}
}

func TestParseIdeas_MalformedJSON(t *testing.T) {
	if _, err := ParseIdeas([]byte("{not json")); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestParseIdeas_SkipsEmptyKeywords(t *testing.T) {
	body := []byte(`{
		"success": true,
		"ideas": [
			{"keyword": ""},
			{"keyword": "netflix login"}
		]
	}`)

	records, err := ParseIdeas(body)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected empty keyword skipped, got %d records", len(records))
	}
}

func TestParseIdeas_NoIdeas(t *testing.T) {
	records, err := ParseIdeas([]byte(`{"success": true, "ideas": []}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"keyword-ideas provider returned HTTP 401", false},
		{"keyword-ideas provider returned HTTP 403", false},
		{"keyword-ideas provider returned HTTP 404", false},
		{"keyword-ideas provider returned HTTP 500", true},
		{"keyword-ideas provider returned HTTP 429", true},
		{"dial tcp: connection refused", true},
	}
	for _, c := range cases {
		err := errMsg(c.msg)
		if got := isRetryable(err); got != c.want {
			t.Errorf("isRetryable(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

type errMsg string

func (e errMsg) Error() string { return string(e) }
