// Package models contains data structures for the application's domain models.
package models

import "time"

// User is the authoring identity for content, comments, and engagement
// relations. Account lifecycle (signup, sessions) is handled outside this
// service; rows exist here so ownership and usernames can be resolved.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
