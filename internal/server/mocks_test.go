package server

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"newsboard/internal/config"
	"newsboard/internal/models"
	"newsboard/internal/repository"
	"newsboard/internal/service"
)

// MockContentRepository is a mock of the ContentRepository interface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, content *models.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) FindVisibleByID(ctx context.Context, id uint, now time.Time) (*models.Content, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, q repository.ContentQuery) ([]models.Content, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, content *models.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) ToggleLike(ctx context.Context, userID, contentID uint) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) ToggleFavorite(ctx context.Context, userID, contentID uint) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListThread(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	args := m.Called(ctx, contentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListFeed(ctx context.Context, q repository.CommentQuery) ([]models.Comment, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ToggleLike(ctx context.Context, userID, commentID uint) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test-secret-test-secret-test-1234"

// newTestServer wires a Server over mocked repositories.
func newTestServer(contentRepo *MockContentRepository, commentRepo *MockCommentRepository, userRepo *MockUserRepository) *Server {
	s := &Server{
		config:   &config.Config{JWTSecret: testJWTSecret, Env: "test"},
		userRepo: userRepo,
	}
	s.contentService = service.NewContentService(contentRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, contentRepo, userRepo)
	return s
}
