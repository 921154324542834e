package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/infrastructure/database"
	"clicksign-esign/internal/infrastructure/redis"
)

const version = "1.0.0"

// Pinger is a dependency the health check probes
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(db *database.Database, redisClient *redis.RedisClient) *HealthHandler {
	return NewHealthHandlerWithChecks(map[string]Pinger{
		"database": db,
		"redis":    redisClient,
	})
}

func NewHealthHandlerWithChecks(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Health godoc
// @Summary Health check
// @Description Check if the service and its stores are reachable
// @Tags health
// @Produce json
// @Success 200 {object} entity.APIResponse
// @Failure 503 {object} entity.APIResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Version:      version,
		Dependencies: make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			resp.Status = "unhealthy"
			resp.Dependencies[name] = err.Error()
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	if resp.Status != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(&entity.APIResponse{
			Success: false,
			Message: "Service is unhealthy",
			Data:    resp,
		})
	}

	return c.JSON(entity.NewSuccessResponse(resp, "Service is healthy"))
}
