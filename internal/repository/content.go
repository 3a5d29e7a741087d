package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"newsboard/internal/models"
)

// ContentQuery describes a feed listing: optional engagement/author filters,
// sort mode, pagination, and the ranking snapshot time. At most one filter
// pointer is expected to be set.
type ContentQuery struct {
	FavoriteOf *uint
	LikedBy    *uint
	AuthorID   *uint
	Sort       string
	Limit      int
	Offset     int
	Now        time.Time
}

// ContentRepository defines the interface for content data operations.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	// GetByID looks a row up regardless of visibility; mutations and
	// engagement toggles resolve their target through it.
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	// FindVisibleByID returns the annotated, visible row or gorm.ErrRecordNotFound.
	FindVisibleByID(ctx context.Context, id uint, now time.Time) (*models.Content, error)
	List(ctx context.Context, q ContentQuery) ([]models.Content, error)
	Update(ctx context.Context, content *models.Content) error
	SoftDelete(ctx context.Context, id uint) error
	// ToggleLike flips set membership and reports whether the like was added.
	ToggleLike(ctx context.Context, userID, contentID uint) (bool, error)
	ToggleFavorite(ctx context.Context, userID, contentID uint) (bool, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository backed by gorm.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

const (
	contentCommentCountSQL = "(SELECT COUNT(*) FROM comments WHERE comments.content_id = contents.id AND comments.is_visible = true)"
	contentLikeCountSQL    = "(SELECT COUNT(*) FROM content_likes WHERE content_likes.content_id = contents.id)"
)

// ageDaysSQL returns the dialect-specific expression computing whole days
// between created_at and a bound unix-seconds "now". Both branches floor the
// division and clamp at zero so future timestamps never produce a bonus.
func ageDaysSQL(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "GREATEST(FLOOR((? - EXTRACT(EPOCH FROM contents.created_at)) / 86400), 0)::int"
	}
	return "MAX(CAST((? - strftime('%s', contents.created_at)) / 86400 AS INTEGER), 0)"
}

// annotate attaches the computed ranking columns. The snapshot time is
// truncated to whole seconds and bound once per expression so every row in
// a single query ages against the same instant.
func (r *contentRepository) annotate(db *gorm.DB, now time.Time) *gorm.DB {
	nowUnix := now.Truncate(time.Second).Unix()
	age := ageDaysSQL(db)
	sel := fmt.Sprintf(
		"contents.*, %s AS comment_count, %s AS like_count, %s AS age_days, (-%d * %s + %d * %s + %d * %s) AS article_point",
		contentCommentCountSQL, contentLikeCountSQL, age,
		models.AgePenalty, age,
		models.CommentWeight, contentCommentCountSQL,
		models.LikeWeight, contentLikeCountSQL,
	)
	return db.Select(sel, nowUnix, nowUnix)
}

// applySort orders the feed. "new" is recency alone; everything else ranks
// by article_point with recency breaking ties.
func applySort(db *gorm.DB, sort string) *gorm.DB {
	if sort == "new" {
		return db.Order("contents.created_at DESC")
	}
	return db.Order("article_point DESC, contents.created_at DESC")
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) FindVisibleByID(ctx context.Context, id uint, now time.Time) (*models.Content, error) {
	var content models.Content
	db := r.db.WithContext(ctx).Model(&models.Content{})
	err := r.annotate(db, now).
		Preload("User").
		Where("contents.id = ? AND contents.is_visible = ?", id, true).
		First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *contentRepository) List(ctx context.Context, q ContentQuery) ([]models.Content, error) {
	db := r.db.WithContext(ctx).Model(&models.Content{})
	db = r.annotate(db, q.Now).
		Preload("User").
		Where("contents.is_visible = ?", true)

	switch {
	case q.FavoriteOf != nil:
		db = db.Where("contents.id IN (SELECT content_id FROM favorites WHERE user_id = ?)", *q.FavoriteOf)
	case q.LikedBy != nil:
		db = db.Where("contents.id IN (SELECT content_id FROM content_likes WHERE user_id = ?)", *q.LikedBy)
	case q.AuthorID != nil:
		db = db.Where("contents.user_id = ?", *q.AuthorID)
	}

	var contents []models.Content
	err := applySort(db, q.Sort).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	return r.db.WithContext(ctx).Model(content).
		Select("title", "body", "updated_at").
		Updates(map[string]interface{}{
			"title": content.Title,
			"body":  content.Body,
		}).Error
}

func (r *contentRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Content{}).
		Where("id = ?", id).
		Update("is_visible", false).Error
}

func (r *contentRepository) ToggleLike(ctx context.Context, userID, contentID uint) (bool, error) {
	return toggleMembership(ctx, r.db, "content_likes", "content_id", userID, contentID)
}

func (r *contentRepository) ToggleFavorite(ctx context.Context, userID, contentID uint) (bool, error) {
	return toggleMembership(ctx, r.db, "favorites", "content_id", userID, contentID)
}

// toggleMembership flips a (user, target) pair in a relation table. The
// conditional insert relies on the composite unique index, so a concurrent
// duplicate insert degrades to the delete branch instead of erroring.
func toggleMembership(ctx context.Context, db *gorm.DB, table, targetCol string, userID, targetID uint) (bool, error) {
	added := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := fmt.Sprintf(
			"INSERT INTO %s (user_id, %s, created_at) VALUES (?, ?, ?) ON CONFLICT (user_id, %s) DO NOTHING",
			table, targetCol, targetCol,
		)
		res := tx.Exec(insert, userID, targetID, time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			added = true
			return nil
		}
		del := fmt.Sprintf("DELETE FROM %s WHERE user_id = ? AND %s = ?", table, targetCol)
		return tx.Exec(del, userID, targetID).Error
	})
	if err != nil {
		return false, err
	}
	return added, nil
}
