package server

import (
	"github.com/gofiber/fiber/v2"

	"newsboard/internal/models"
	"newsboard/internal/service"
)

type createContentRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type updateContentRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GetContentList handles GET /content with optional filter and sort
// parameters: favorite-by, liked-by, user, order-by.
func (s *Server) GetContentList(c *fiber.Ctx) error {
	p := parsePagination(c, contentDefaultLimit, contentMaxLimit)

	contents, err := s.contentService.ListContent(c.Context(), service.ListContentInput{
		FavoriteBy: c.Query("favorite-by"),
		LikedBy:    c.Query("liked-by"),
		Author:     c.Query("user"),
		OrderBy:    c.Query("order-by"),
		Limit:      p.Limit,
		Offset:     p.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(contents)
}

// GetContent handles GET /content/:id. The body is an array of zero or one
// items; a hidden or unknown id is an empty array, not a 404.
func (s *Server) GetContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	contents, err := s.contentService.GetContent(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(contents)
}

// CreateContent handles POST /content
func (s *Server) CreateContent(c *fiber.Ctx) error {
	var req createContentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content, err := s.contentService.CreateContent(c.Context(), service.CreateContentInput{
		UserID: actorID(c),
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

// UpdateContent handles PUT /content/:id
func (s *Server) UpdateContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Target and ownership are settled before the body is read; 404 and
	// 403 outrank a malformed payload's 400.
	if err := s.contentService.AuthorizeMutation(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}

	var req updateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content, err := s.contentService.UpdateContent(c.Context(), service.UpdateContentInput{
		UserID:    actorID(c),
		ContentID: id,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(content)
}

// DeleteContent handles DELETE /content/:id
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteContent(c.Context(), service.DeleteContentInput{
		UserID:    actorID(c),
		ContentID: id,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
