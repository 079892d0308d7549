package rest

import (
	"errors"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/gofiber/fiber/v2"
)

const (
	internalErrorDetail = "internal server error"
	bodyTooLargeDetail  = "File too large"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrNoArchivedFile):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrInvalidID),
		errors.Is(err, common.ErrNotCSV),
		errors.Is(err, common.ErrMalformedInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)

	detail := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		detail = fe.Message
	}
	// oversized bodies are rejected by fasthttp before routing and reach
	// here as fiber.ErrRequestEntityTooLarge
	if code == fiber.StatusRequestEntityTooLarge {
		detail = bodyTooLargeDetail
	}

	if code == fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		detail = internalErrorDetail
	}

	if code == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	return c.Status(code).JSON(fiber.Map{"detail": detail})
}
