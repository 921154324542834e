package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/internal/usecase"
	"clicksign-esign/pkg/clicksign"
)

// errorStatus maps a use case error to the HTTP status and error code returned
// to the caller.
func errorStatus(err error) (int, string) {
	var remoteErr *clicksign.RemoteError
	var decodeErr *clicksign.DecodeError
	var transportErr *clicksign.TransportError

	switch {
	case errors.As(err, &remoteErr):
		code := "CLICKSIGN_" + strings.ToUpper(remoteErr.Kind.String())
		if remoteErr.Kind == clicksign.KindUnexpectedStatus {
			return fiber.StatusBadGateway, code
		}
		return remoteErr.StatusCode, code
	case errors.As(err, &decodeErr):
		return fiber.StatusBadGateway, "DECODE_ERROR"
	case errors.As(err, &transportErr):
		return fiber.StatusBadGateway, "TRANSPORT_ERROR"
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, clicksign.ErrMissingTemplateKey):
		return fiber.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, repository.ErrDocumentNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func writeError(c *fiber.Ctx, logger *zap.Logger, msg string, err error) error {
	status, code := errorStatus(err)

	message, detail := err.Error(), ""
	var remoteErr *clicksign.RemoteError
	var transportErr *clicksign.TransportError
	switch {
	case errors.As(err, &remoteErr):
		detail = remoteErr.Body
	case errors.As(err, &transportErr):
		// The cause comes from the network stack and is only logged.
		message = "Clicksign is unreachable: request to " + transportErr.Endpoint + " failed"
	}

	if status >= fiber.StatusInternalServerError {
		logger.Error(msg, zap.Int("status", status), zap.String("code", code), zap.Error(err))
	} else {
		logger.Warn(msg, zap.Int("status", status), zap.String("code", code), zap.Error(err))
	}

	return c.Status(status).JSON(entity.NewErrorResponseWithDetail(code, message, detail))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(
		entity.NewErrorResponse("BAD_REQUEST", message),
	)
}
