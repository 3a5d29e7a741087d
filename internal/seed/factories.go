// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"newsboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		PasswordHash: string(hashedPassword),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateContent constructs and persists a sample `models.Content` for the
// given user, with a created_at spread over the past maxDays days so the
// score decay produces a realistic feed mix.
func (f *Factory) CreateContent(user *models.User, maxDays int, overrides ...func(*models.Content)) (*models.Content, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)

	content := &models.Content{
		UserID:    user.ID,
		Title:     gofakeit.Sentence(5),
		Body:      gofakeit.Paragraph(1, 3, 5, "\n"),
		Visible:   true,
		CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour),
	}

	for _, override := range overrides {
		override(content)
	}

	if err := f.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided content authored by the provided user.
func (f *Factory) CreateComment(user *models.User, content *models.Content, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:    user.ID,
		ContentID: content.ID,
		Body:      gofakeit.Sentence(8),
		Visible:   true,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateContentLike persists a like from `user` on `content`.
func (f *Factory) CreateContentLike(user *models.User, content *models.Content) error {
	return f.db.Create(&models.ContentLike{UserID: user.ID, ContentID: content.ID}).Error
}

// CreateCommentLike persists a like from `user` on `comment`.
func (f *Factory) CreateCommentLike(user *models.User, comment *models.Comment) error {
	return f.db.Create(&models.CommentLike{UserID: user.ID, CommentID: comment.ID}).Error
}

// CreateFavorite persists a favorite from `user` on `content`.
func (f *Factory) CreateFavorite(user *models.User, content *models.Content) error {
	return f.db.Create(&models.Favorite{UserID: user.ID, ContentID: content.ID}).Error
}
