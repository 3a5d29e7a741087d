package server

import (
	"github.com/gofiber/fiber/v2"

	"newsboard/internal/models"
	"newsboard/internal/service"
)

type commentBodyRequest struct {
	Body string `json:"body"`
}

// GetThread handles GET /content/:id/comment, returning the visible comments
// of one content item oldest first.
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, commentDefaultLimit, commentMaxLimit)
	comments, err := s.commentService.ListThread(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// GetCommentFeed handles GET /comment, the global comment feed newest first,
// with optional liked-by and user filters.
func (s *Server) GetCommentFeed(c *fiber.Ctx) error {
	p := parsePagination(c, commentDefaultLimit, commentMaxLimit)

	comments, err := s.commentService.ListFeed(c.Context(), service.ListCommentFeedInput{
		LikedBy: c.Query("liked-by"),
		Author:  c.Query("user"),
		Limit:   p.Limit,
		Offset:  p.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /content/:id/comment
func (s *Server) CreateComment(c *fiber.Ctx) error {
	contentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentBodyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:    actorID(c),
		ContentID: contentID,
		Body:      req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /comment/:id. An accepted edit answers 202.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Target and ownership are settled before the body is read; 404 and
	// 403 outrank a malformed payload's 400.
	if err := s.commentService.AuthorizeMutation(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}

	var req commentBodyRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    actorID(c),
		CommentID: id,
		Body:      req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(comment)
}

// DeleteComment handles DELETE /comment/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    actorID(c),
		CommentID: id,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
