package repository

import (
	"context"

	"gorm.io/gorm"

	"newsboard/internal/models"
)

// CommentQuery describes the global comment feed: optional filters plus
// pagination. Unlike content, comments have no favorite relation to filter on.
type CommentQuery struct {
	LikedBy  *uint
	AuthorID *uint
	Limit    int
	Offset   int
}

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// GetByID looks a row up regardless of visibility.
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// ListThread returns a content item's visible comments oldest first,
	// so a thread reads top to bottom in conversation order.
	ListThread(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error)
	// ListFeed returns visible comments across all content, newest first.
	ListFeed(ctx context.Context, q CommentQuery) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	SoftDelete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, commentID uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository backed by gorm.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListThread(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("content_id = ? AND is_visible = ?", contentID, true).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListFeed(ctx context.Context, q CommentQuery) ([]models.Comment, error) {
	db := r.db.WithContext(ctx).
		Preload("User").
		Where("is_visible = ?", true)

	switch {
	case q.LikedBy != nil:
		db = db.Where("comments.id IN (SELECT comment_id FROM comment_likes WHERE user_id = ?)", *q.LikedBy)
	case q.AuthorID != nil:
		db = db.Where("comments.user_id = ?", *q.AuthorID)
	}

	var comments []models.Comment
	err := db.Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Model(comment).
		Select("body", "updated_at").
		Updates(map[string]interface{}{"body": comment.Body}).Error
}

func (r *commentRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).
		Update("is_visible", false).Error
}

func (r *commentRepository) ToggleLike(ctx context.Context, userID, commentID uint) (bool, error) {
	return toggleMembership(ctx, r.db, "comment_likes", "comment_id", userID, commentID)
}
