package server

import (
	"github.com/gofiber/fiber/v2"

	"newsboard/internal/service"
)

// Toggle verbs, combined with " success." / " canceled." in responses.
// Comment likes echo the comment id under "content_id" as well; clients key
// off the message text, not the field name.
const (
	verbFavoriteContent = "Favorite content"
	verbLikeContent     = "Like content"
	verbLikeComment     = "Like comment"
)

// ToggleFavorite handles POST /content/:id/favorite
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.contentService.ToggleFavorite(c.Context(), actorID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondToggle(c, verbFavoriteContent, res)
}

// ToggleContentLike handles POST /content/:id/like
func (s *Server) ToggleContentLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.contentService.ToggleLike(c.Context(), actorID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondToggle(c, verbLikeContent, res)
}

// ToggleCommentLike handles POST /comment/:id/like
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.commentService.ToggleLike(c.Context(), actorID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondToggle(c, verbLikeComment, res)
}

// respondToggle writes the toggle outcome: an added relation echoes the
// actor and target, a removed one is message-only.
func respondToggle(c *fiber.Ctx, verb string, res *service.ToggleResult) error {
	if res.Added {
		return c.JSON(fiber.Map{
			"message":    verb + " success.",
			"user":       res.Username,
			"content_id": res.TargetID,
		})
	}
	return c.JSON(fiber.Map{
		"message": verb + " canceled.",
	})
}
