// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"newsboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const (
	contentDefaultLimit = 20
	contentMaxLimit     = 100
	commentDefaultLimit = 50
	commentMaxLimit     = 50
)

// parsePagination extracts limit and offset query parameters, clamped to
// [1, maxLimit] with non-positive or absent values falling back to the default.
func parsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// actorID returns the authenticated actor set by RequireActor.
func actorID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// respondServiceError maps a service-layer error to its HTTP shape. Status
// codes live here and nowhere else: not-found 404, validation 400, malformed
// query 406 with a message-only body, forbidden 403 with an empty body,
// anything else 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeMalformedQuery:
			return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
				"message": appErr.Message,
			})
		case models.CodeForbidden:
			// Status only; SendStatus would fill the body with "Forbidden".
			return c.Status(fiber.StatusForbidden).Send(nil)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
