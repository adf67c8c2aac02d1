package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/embedding"
)

type fakeClusterService struct {
	err error
}

func (f *fakeClusterService) Cluster(ctx context.Context, method clusterer.Method, records []clusterer.KeywordRecord) (*clusterer.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &clusterer.Result{
		Method: string(method),
		Clusters: []clusterer.Cluster{
			{Name: "Netflix Login", Keywords: records},
		},
		NegativeCandidates: nil,
	}, nil
}

func newTestApp(svc *fakeClusterService) *fiber.App {
	app := fiber.New()
	NewController(svc).RegisterRoutes(app)
	return app
}

func postCluster(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/cluster", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func TestHandleCluster_Success(t *testing.T) {
	app := newTestApp(&fakeClusterService{})

	resp := postCluster(t, app, `{"method":"rule","keywords":[{"keyword":"netflix login"}]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result clusterer.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Expected JSON result, got: %v", err)
	}
	if result.Method != string(clusterer.MethodRuleBased) {
		t.Errorf("Expected rule method, got %q", result.Method)
	}
	if len(result.Clusters) != 1 || result.Clusters[0].Name != "Netflix Login" {
		t.Errorf("Unexpected clusters: %+v", result.Clusters)
	}
}

func TestHandleCluster_DefaultsToRule(t *testing.T) {
	app := newTestApp(&fakeClusterService{})

	resp := postCluster(t, app, `{"keywords":[{"keyword":"netflix login"}]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result clusterer.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Expected JSON result, got: %v", err)
	}
	if result.Method != string(clusterer.MethodRuleBased) {
		t.Errorf("Expected rule method default, got %q", result.Method)
	}
}

func TestHandleCluster_InvalidBody(t *testing.T) {
	app := newTestApp(&fakeClusterService{})

	resp := postCluster(t, app, `{not json`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleCluster_UnknownMethod(t *testing.T) {
	app := newTestApp(&fakeClusterService{})

	resp := postCluster(t, app, `{"method":"magic","keywords":[]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Expected JSON error, got: %v", err)
	}
	if body.Error == "" {
		t.Error("Expected error message in response")
	}
}

func TestHandleCluster_EmbeddingUnavailable(t *testing.T) {
	app := newTestApp(&fakeClusterService{
		err: fmt.Errorf("semantic clustering: %w", embedding.ErrUnavailable),
	})

	resp := postCluster(t, app, `{"method":"semantic","keywords":[{"keyword":"netflix login"}]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", resp.StatusCode)
	}
}

func TestHandleCluster_InternalError(t *testing.T) {
	app := newTestApp(&fakeClusterService{
		err: fmt.Errorf("encoder exploded"),
	})

	resp := postCluster(t, app, `{"method":"rule","keywords":[]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(&fakeClusterService{})

	req, err := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Expected JSON body, got: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected ok status, got %q", body["status"])
	}
}
