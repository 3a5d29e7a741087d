package models

import "time"

// Engagement relations are plain membership sets: a (user, target) pair is
// either present or absent, enforced by a composite unique index so that
// concurrent toggles cannot double-insert. Removal is a hard delete; the
// rows carry no visibility flag and survive their target being soft-deleted.

// ContentLike marks a user's approval of a content item.
type ContentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_content_like" json:"user_id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_content_like" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike marks a user's approval of a comment.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_like" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite is a user's bookmark of a content item. Same toggle semantics as
// ContentLike, kept as a separate table because the two are semantically
// distinct and filtered independently.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite" json:"user_id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_favorite" json:"content_id"`
	CreatedAt time.Time `json:"created_at"`
}
