package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/usecase"
)

type WebhookHandler struct {
	usecase usecase.WebhookUsecase
	logger  *zap.Logger
}

func NewWebhookHandler(usecase usecase.WebhookUsecase, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ClicksignCallback godoc
// @Summary Clicksign webhook callback
// @Description Receives webhook callbacks from Clicksign when something happens to a document
// @Tags webhook
// @Accept json
// @Produce json
// @Param payload body entity.WebhookPayload true "Webhook payload"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /webhook/clicksign [post]
func (h *WebhookHandler) ClicksignCallback(c *fiber.Ctx) error {
	h.logger.Debug("Received Clicksign webhook callback",
		zap.String("body", string(c.Body())),
	)

	var payload entity.WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		h.logger.Error("Failed to parse webhook payload", zap.Error(err))
		return badRequest(c, "Invalid webhook payload")
	}

	if err := h.usecase.ProcessWebhook(c.UserContext(), &payload); err != nil {
		return writeError(c, h.logger, "Failed to process webhook", err)
	}

	return c.JSON(entity.NewSuccessResponse(map[string]interface{}{
		"document_key": payload.DocumentKey(),
		"event":        payload.Event.Name,
		"processed":    true,
	}, "Webhook processed successfully"))
}
