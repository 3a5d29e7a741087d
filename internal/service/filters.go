// Package service implements the application's business logic on top of the
// repository layer. Services return *models.AppError values that the
// transport layer maps to HTTP status codes.
package service

import (
	"strconv"

	"newsboard/internal/models"
)

// parseUserParam converts an id-like query parameter to a user id. A
// non-numeric or signed value is rejected rather than ignored, so callers
// can surface a malformed-query error instead of silently listing everything.
func parseUserParam(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, models.NewMalformedQueryError()
	}
	return uint(id), nil
}

// authorizeOwner is the single ownership gate shared by every owner-guarded
// mutation on content and comments.
func authorizeOwner(ownerID, actorID uint) error {
	if ownerID != actorID {
		return models.NewForbiddenError("You do not have permission to modify this resource")
	}
	return nil
}
