package models

import "time"

// Comment belongs to exactly one Content row; ContentID never changes after
// creation. Soft deletion mirrors Content: hidden comments stop counting
// toward their parent's comment_count but the row stays for traceability.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	ContentID uint      `gorm:"not null;index" json:"content_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Visible   bool      `gorm:"column:is_visible;not null;default:true" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
