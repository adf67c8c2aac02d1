package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"adgroup-go/pkg/logger"
)

const (
	// DefaultModel is the default sentence-embedding model served by Ollama
	DefaultModel = "all-minilm"

	// DefaultDimension is the vector size produced by DefaultModel
	DefaultDimension = 384

	defaultRequestTimeout = 60 * time.Second
)

// OllamaConfig holds connection settings for an Ollama embedding server
type OllamaConfig struct {
	BaseURL   string        `json:"base_url"`
	Model     string        `json:"model"`
	Dimension int           `json:"dimension"`
	Timeout   time.Duration `json:"timeout"`
}

// DefaultOllamaConfig returns settings for a local Ollama instance
func DefaultOllamaConfig() OllamaConfig {
	return OllamaConfig{
		BaseURL:   "http://127.0.0.1:11434",
		Model:     DefaultModel,
		Dimension: DefaultDimension,
		Timeout:   defaultRequestTimeout,
	}
}

type ollamaEncoder struct {
	config OllamaConfig
	client *fasthttp.Client
	log    *logger.Logger
}

// NewOllamaEncoder creates an Encoder backed by the Ollama embed API.
// It verifies the server is reachable before returning; an unreachable
// server surfaces as ErrUnavailable.
func NewOllamaEncoder(config OllamaConfig) (Encoder, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultOllamaConfig().BaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Dimension == 0 {
		config.Dimension = DefaultDimension
	}
	if config.Timeout == 0 {
		config.Timeout = defaultRequestTimeout
	}

	enc := &ollamaEncoder{
		config: config,
		client: &fasthttp.Client{
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
		},
		log: logger.GetLogger().WithField("component", "ollama_encoder"),
	}

	if err := enc.ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	enc.log.WithField("model", config.Model).Info("Embedding encoder ready")
	return enc, nil
}

func (e *ollamaEncoder) Model() string {
	return e.config.Model
}

func (e *ollamaEncoder) Dimension() int {
	return e.config.Dimension
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

func (e *ollamaEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(embedRequest{Model: e.config.Model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embed request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(e.config.BaseURL + "/api/embed")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	start := time.Now()
	if err := e.client.DoTimeout(req, resp, e.config.Timeout); err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("embed request returned HTTP %d: %s", resp.StatusCode(), truncate(resp.Body(), 200))
	}

	var parsed embedResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}

	if len(parsed.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed response has %d vectors for %d texts", len(parsed.Embeddings), len(texts))
	}

	e.log.WithFields(map[string]interface{}{
		"texts":       len(texts),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Batch embedding completed")

	return parsed.Embeddings, nil
}

// ping checks server reachability with a minimal request
func (e *ollamaEncoder) ping() error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(e.config.BaseURL + "/api/version")
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := e.client.DoTimeout(req, resp, 5*time.Second); err != nil {
		return fmt.Errorf("embedding server unreachable at %s: %w", e.config.BaseURL, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("embedding server returned HTTP %d", resp.StatusCode())
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
