package models

import "time"

// Content is a top-level article, the primary feed entity.
//
// Visible implements soft deletion: rows flip true->false exactly once and
// are never removed. Every read-for-display path filters on it; the raw id
// lookup used by mutations and engagement toggles does not.
type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Visible   bool      `gorm:"column:is_visible;not null;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CommentCount is not persisted; computed at query time over visible comments.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
	// LikeCount is not persisted; computed at query time.
	LikeCount int `gorm:"->;-:migration" json:"like_count"`
	// AgeDays is computed per query against a single truncated-to-seconds
	// snapshot of "now"; it feeds ArticlePoint and is not serialized.
	AgeDays int `gorm:"->;-:migration" json:"-"`
	// ArticlePoint is the ranking key: -5*age_days + 3*comment_count + like_count.
	ArticlePoint int `gorm:"->;-:migration" json:"article_point"`
}
