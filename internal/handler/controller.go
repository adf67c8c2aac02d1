package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"adgroup-go/internal/service"
	"adgroup-go/pkg/clusterer"
	"adgroup-go/pkg/embedding"
	"adgroup-go/pkg/logger"
)

// Controller wires the clustering engine behind the HTTP API
type Controller struct {
	clusters service.ClusterService
	log      *logger.Logger
}

// ClusterRequest is the POST /api/v1/cluster body
type ClusterRequest struct {
	Method   string                    `json:"method"`
	Keywords []clusterer.KeywordRecord `json:"keywords"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewController(clusters service.ClusterService) *Controller {
	return &Controller{
		clusters: clusters,
		log:      logger.GetLogger().WithField("component", "http_controller"),
	}
}

// RegisterRoutes attaches all API routes to the fiber app
func (c *Controller) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")
	api.Post("/cluster", c.handleCluster)
	api.Get("/health", c.handleHealth)
}

func (c *Controller) handleCluster(ctx *fiber.Ctx) error {
	var req ClusterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if req.Method == "" {
		req.Method = string(clusterer.MethodRuleBased)
	}
	method, err := clusterer.ParseMethod(req.Method)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := c.clusters.Cluster(ctx.Context(), method, req.Keywords)
	if err != nil {
		if errors.Is(err, embedding.ErrUnavailable) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
		}
		c.log.WithError(err).Error("Clustering request failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	c.log.WithFields(map[string]interface{}{
		"method":      string(method),
		"keywords":    len(req.Keywords),
		"clusters":    len(result.Clusters),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Clustering request completed")

	return ctx.JSON(result)
}

func (c *Controller) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
