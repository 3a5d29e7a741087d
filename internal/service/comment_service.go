package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"newsboard/internal/models"
	"newsboard/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

type CreateCommentInput struct {
	UserID    uint
	ContentID uint
	Body      string
}

// ListCommentFeedInput carries raw filter parameters for the global comment
// feed. Precedence when both are present: LikedBy, then Author.
type ListCommentFeedInput struct {
	LikedBy string
	Author  string
	Limit   int
	Offset  int
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Body      string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Comment body is required")
	}

	// The parent is resolved by raw id, so commenting on a hidden content
	// row is possible; it just never surfaces in the thread view.
	if _, err := s.contentRepo.GetByID(ctx, in.ContentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Content", in.ContentID)
		}
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{
		UserID:    in.UserID,
		ContentID: in.ContentID,
		Body:      in.Body,
		Visible:   true,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// ListThread returns a content item's visible comments in chronological
// order. An unknown content id yields an empty thread, mirroring GetContent.
func (s *CommentService) ListThread(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListThread(ctx, contentID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (s *CommentService) ListFeed(ctx context.Context, in ListCommentFeedInput) ([]models.Comment, error) {
	q := repository.CommentQuery{
		Limit:  in.Limit,
		Offset: in.Offset,
	}

	if in.LikedBy != "" {
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

	comments, err := s.commentRepo.ListFeed(ctx, q)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// AuthorizeMutation resolves a comment by raw id and applies the ownership
// gate without changing anything, letting handlers answer 404 or 403 before
// the request body is read.
func (s *CommentService) AuthorizeMutation(ctx context.Context, commentID, actorID uint) error {
	_, err := s.loadForMutation(ctx, commentID, actorID)
	return err
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.loadForMutation(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Body != "" {
		comment.Body = in.Body
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	if _, err := s.loadForMutation(ctx, in.CommentID, in.UserID); err != nil {
		return err
	}
	if err := s.commentRepo.SoftDelete(ctx, in.CommentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *CommentService) ToggleLike(ctx context.Context, userID, commentID uint) (*ToggleResult, error) {
	if _, err := s.loadTarget(ctx, commentID); err != nil {
		return nil, err
	}
	added, err := s.commentRepo.ToggleLike(ctx, userID, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	res := &ToggleResult{Added: added, TargetID: commentID}
	// Canceled responses carry no username; see ContentService.toggleResult.
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

func (s *CommentService) loadForMutation(ctx context.Context, commentID, actorID uint) (*models.Comment, error) {
	comment, err := s.loadTarget(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(comment.UserID, actorID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) loadTarget(ctx context.Context, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}
