package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"

	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/logger"
)

// languageConstants maps language codes to provider language constant IDs
var languageConstants = map[string]string{
	"en": "1000",
	"fr": "1002",
	"es": "1003",
}

// Config holds keyword-ideas provider settings
type Config struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key"`
	Timeout time.Duration `json:"timeout"`
}

type httpClient struct {
	config Config
	client *fasthttp.Client
	retry  *retrier
	log    *logger.Logger

	totalRequests  uint64
	failedRequests uint64
}

// NewHTTPClient creates a keyword-ideas provider client
func NewHTTPClient(config Config) Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &httpClient{
		config: config,
		client: &fasthttp.Client{
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
		},
		retry: newRetrier(3, 1*time.Second),
		log:   logger.GetLogger().WithField("component", "planner_client"),
	}
}

func (c *httpClient) GenerateIdeas(ctx context.Context, req IdeaRequest) ([]clusterer.KeywordRecord, error) {
	if req.URL == "" && len(req.SeedKeywords) == 0 {
		return nil, fmt.Errorf("idea request needs a seed URL or seed keywords")
	}

	atomic.AddUint64(&c.totalRequests, 1)
	start := time.Now()
	c.log.WithField("url", req.URL).Debug("Requesting keyword ideas")

	var records []clusterer.KeywordRecord
	err := c.retry.execute(ctx, func() error {
		var reqErr error
		records, reqErr = c.doRequest(req)
		return reqErr
	})
	if err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		c.log.WithError(err).WithField("url", req.URL).Error("Keyword ideas request failed")
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"keywords":    len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Keyword ideas received")
	return records, nil
}

func (c *httpClient) doRequest(req IdeaRequest) ([]clusterer.KeywordRecord, error) {
	if lang := req.LanguageCode; lang != "" {
		if id, ok := languageConstants[lang]; ok {
			req.LanguageCode = id
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode idea request: %w", err)
	}

	httpReq := fasthttp.AcquireRequest()
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(httpReq)
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(c.config.BaseURL + "/v1/keyword-ideas")
	httpReq.Header.SetMethod(fasthttp.MethodPost)
	httpReq.Header.SetContentType("application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	httpReq.SetBody(body)

	if err := c.client.DoTimeout(httpReq, httpResp, c.config.Timeout); err != nil {
		return nil, fmt.Errorf("keyword-ideas request failed: %w", err)
	}

	if code := httpResp.StatusCode(); code != fasthttp.StatusOK {
		return nil, fmt.Errorf("keyword-ideas provider returned HTTP %d", code)
	}

	return ParseIdeas(httpResp.Body())
}
