package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"newsboard/internal/models"
	"newsboard/internal/repository"
)

type ContentService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewContentService(contentRepo repository.ContentRepository, userRepo repository.UserRepository) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

type CreateContentInput struct {
	UserID uint
	Title  string
	Body   string
}

// ListContentInput carries the raw filter parameters as received on the
// wire. Parsing happens here so a bad value fails loudly instead of being
// coerced. Filter precedence when several are present: FavoriteBy, then
// LikedBy, then Author.
type ListContentInput struct {
	FavoriteBy string
	LikedBy    string
	Author     string
	OrderBy    string
	Limit      int
	Offset     int
}

type UpdateContentInput struct {
	UserID    uint
	ContentID uint
	Title     string
	Body      string
}

type DeleteContentInput struct {
	UserID    uint
	ContentID uint
}

// ToggleResult reports the outcome of a like or favorite toggle: whether the
// relation was added (vs. removed), the actor's username, and the target id.
type ToggleResult struct {
	Added    bool
	Username string
	TargetID uint
}

func (s *ContentService) ListContent(ctx context.Context, in ListContentInput) ([]models.Content, error) {
	q := repository.ContentQuery{
		Sort:   in.OrderBy,
		Limit:  in.Limit,
		Offset: in.Offset,
		Now:    s.now(),
	}

	if in.FavoriteBy != "" {
		id, err := parseUserParam(in.FavoriteBy)
		if err != nil {
			return nil, err
		}
		q.FavoriteOf = &id
	} else if in.LikedBy != "" {
		id, err := parseUserParam(in.LikedBy)
		if err != nil {
			return nil, err
		}
		q.LikedBy = &id
	} else if in.Author != "" {
		id, err := parseUserParam(in.Author)
		if err != nil {
			return nil, err
		}
		q.AuthorID = &id
	}

	contents, err := s.contentRepo.List(ctx, q)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return contents, nil
}

// GetContent is a list-style detail lookup: a missing or soft-deleted id
// yields an empty slice, not an error. Callers treat "empty" as not found.
func (s *ContentService) GetContent(ctx context.Context, id uint) ([]models.Content, error) {
	content, err := s.contentRepo.FindVisibleByID(ctx, id, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Content{}, nil
		}
		return nil, models.NewInternalError(err)
	}
	return []models.Content{*content}, nil
}

func (s *ContentService) CreateContent(ctx context.Context, in CreateContentInput) (*models.Content, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Content body is required")
	}

	content := &models.Content{
		UserID:  in.UserID,
		Title:   in.Title,
		Body:    in.Body,
		Visible: true,
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, models.NewInternalError(err)
	}
	return content, nil
}

// AuthorizeMutation resolves a content row by raw id and applies the
// ownership gate without changing anything. Handlers call it before reading
// the request body: an absent id answers 404 and a foreign owner 403 ahead
// of any payload problem.
func (s *ContentService) AuthorizeMutation(ctx context.Context, contentID, actorID uint) error {
	_, err := s.loadForMutation(ctx, contentID, actorID)
	return err
}

func (s *ContentService) UpdateContent(ctx context.Context, in UpdateContentInput) (*models.Content, error) {
	content, err := s.loadForMutation(ctx, in.ContentID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		content.Title = in.Title
	}
	if in.Body != "" {
		content.Body = in.Body
	}
	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, models.NewInternalError(err)
	}
	return content, nil
}

func (s *ContentService) DeleteContent(ctx context.Context, in DeleteContentInput) error {
	if _, err := s.loadForMutation(ctx, in.ContentID, in.UserID); err != nil {
		return err
	}
	if err := s.contentRepo.SoftDelete(ctx, in.ContentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *ContentService) ToggleLike(ctx context.Context, userID, contentID uint) (*ToggleResult, error) {
	if _, err := s.loadTarget(ctx, contentID); err != nil {
		return nil, err
	}
	added, err := s.contentRepo.ToggleLike(ctx, userID, contentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.toggleResult(ctx, userID, contentID, added)
}

func (s *ContentService) ToggleFavorite(ctx context.Context, userID, contentID uint) (*ToggleResult, error) {
	if _, err := s.loadTarget(ctx, contentID); err != nil {
		return nil, err
	}
	added, err := s.contentRepo.ToggleFavorite(ctx, userID, contentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.toggleResult(ctx, userID, contentID, added)
}

// loadForMutation resolves the target by raw id, ignoring visibility, then
// applies the ownership gate. An already-hidden row can still be updated or
// re-deleted by its owner.
func (s *ContentService) loadForMutation(ctx context.Context, contentID, actorID uint) (*models.Content, error) {
	content, err := s.loadTarget(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(content.UserID, actorID); err != nil {
		return nil, err
	}
	return content, nil
}

// loadTarget is the raw, visibility-ignoring lookup used by mutations and
// toggles. Only a truly absent row yields not-found.
func (s *ContentService) loadTarget(ctx context.Context, contentID uint) (*models.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Content", contentID)
		}
		return nil, models.NewInternalError(err)
	}
	return content, nil
}

func (s *ContentService) toggleResult(ctx context.Context, userID, targetID uint, added bool) (*ToggleResult, error) {
	res := &ToggleResult{Added: added, TargetID: targetID}
	// The canceled response carries no username; the toggle is already
	// committed, so a failed lookup must not turn it into an error.
	if !added {
		return res, nil
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	res.Username = user.Username
	return res, nil
}
