package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/usecase"
	"clicksign-esign/pkg/clicksign"
)

type EsignHandler struct {
	usecase usecase.EsignUsecase
	logger  *zap.Logger
}

func NewEsignHandler(usecase usecase.EsignUsecase, logger *zap.Logger) *EsignHandler {
	return &EsignHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// CreateDocument godoc
// @Summary Create document from template
// @Description Create a document in Clicksign from a registered template
// @Tags clicksign
// @Accept json
// @Produce json
// @Param request body clicksign.DocumentEnvelope true "Document request"
// @Success 201 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 502 {object} entity.APIResponse
// @Router /api/v1/clicksign/documents [post]
func (h *EsignHandler) CreateDocument(c *fiber.Ctx) error {
	var req clicksign.DocumentEnvelope
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.usecase.CreateDocument(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.logger, "Failed to create document", err)
	}

	return c.Status(fiber.StatusCreated).JSON(entity.NewSuccessResponse(result, "Document created successfully"))
}

// GetDocument godoc
// @Summary Get document snapshot
// @Description Get the last known state of a document, including webhook events
// @Tags clicksign
// @Produce json
// @Param key path string true "Document key"
// @Success 200 {object} entity.APIResponse
// @Failure 404 {object} entity.APIResponse
// @Router /api/v1/clicksign/documents/{key} [get]
func (h *EsignHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.usecase.GetDocument(c.UserContext(), c.Params("key"))
	if err != nil {
		return writeError(c, h.logger, "Failed to get document", err)
	}

	return c.JSON(entity.NewSuccessResponse(doc, "Document retrieved successfully"))
}

// CreateSigner godoc
// @Summary Create signer
// @Tags clicksign
// @Accept json
// @Produce json
// @Param request body clicksign.SignerEnvelope true "Signer request"
// @Success 201 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Router /api/v1/clicksign/signers [post]
func (h *EsignHandler) CreateSigner(c *fiber.Ctx) error {
	var req clicksign.SignerEnvelope
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.usecase.CreateSigner(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.logger, "Failed to create signer", err)
	}

	return c.Status(fiber.StatusCreated).JSON(entity.NewSuccessResponse(result, "Signer created successfully"))
}

// AddSignerToDocument godoc
// @Summary Add signer to document
// @Tags clicksign
// @Accept json
// @Produce json
// @Param request body clicksign.ListEnvelope true "List request"
// @Success 201 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Router /api/v1/clicksign/lists [post]
func (h *EsignHandler) AddSignerToDocument(c *fiber.Ctx) error {
	var req clicksign.ListEnvelope
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.usecase.AddSignerToDocument(c.UserContext(), req)
	if err != nil {
		return writeError(c, h.logger, "Failed to add signer to document", err)
	}

	return c.Status(fiber.StatusCreated).JSON(entity.NewSuccessResponse(result, "Signer added to document successfully"))
}

// RequestSigningByEmail godoc
// @Summary Notify signer by email
// @Tags clicksign
// @Accept json
// @Produce json
// @Param request body map[string]string true "Notification request"
// @Success 202 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Router /api/v1/clicksign/notifications [post]
func (h *EsignHandler) RequestSigningByEmail(c *fiber.Ctx) error {
	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.usecase.RequestSigningByEmail(c.UserContext(), body); err != nil {
		return writeError(c, h.logger, "Failed to request signature by email", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(entity.NewSuccessResponse(nil, "Notification sent"))
}
