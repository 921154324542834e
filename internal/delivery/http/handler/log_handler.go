package handler

import (
	"github.com/gofiber/fiber/v2"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/domain/repository"
)

type LogHandler struct {
	logRepo repository.APILogRepository
}

func NewLogHandler(logRepo repository.APILogRepository) *LogHandler {
	return &LogHandler{logRepo: logRepo}
}

// GetLogs returns the most recent Clicksign API logs. The repository applies
// the default and maximum limit.
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.logRepo.FindRecent(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(entity.NewErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}

// SearchLogs searches logs by endpoint fragment, e.g. "signers"
func (h *LogHandler) SearchLogs(c *fiber.Ctx) error {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		return badRequest(c, "endpoint parameter required")
	}

	logs, err := h.logRepo.SearchByEndpoint(c.UserContext(), endpoint, c.QueryInt("limit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(entity.NewErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(entity.NewSuccessResponse(logs, "Logs retrieved successfully"))
}
