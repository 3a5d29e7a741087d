package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"newsboard/internal/models"
	"newsboard/internal/repository"
)

// stubCommentRepo implements repository.CommentRepository.
type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listThreadFn func(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error)
	listFeedFn   func(ctx context.Context, q repository.CommentQuery) ([]models.Comment, error)
	updateFn     func(ctx context.Context, comment *models.Comment) error
	softDeleteFn func(ctx context.Context, id uint) error
	toggleLikeFn func(ctx context.Context, userID, commentID uint) (bool, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentRepo) ListThread(ctx context.Context, contentID uint, limit, offset int) ([]models.Comment, error) {
	return s.listThreadFn(ctx, contentID, limit, offset)
}

func (s *stubCommentRepo) ListFeed(ctx context.Context, q repository.CommentQuery) ([]models.Comment, error) {
	return s.listFeedFn(ctx, q)
}

func (s *stubCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}

func (s *stubCommentRepo) SoftDelete(ctx context.Context, id uint) error {
	return s.softDeleteFn(ctx, id)
}

func (s *stubCommentRepo) ToggleLike(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, commentID)
}

func newCommentServiceForTest(commentRepo *stubCommentRepo, contentRepo *stubContentRepo, userRepo *stubUserRepo) *CommentService {
	return NewCommentService(commentRepo, contentRepo, userRepo)
}

func TestCreateCommentRequiresBody(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{}, &stubContentRepo{}, &stubUserRepo{})

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, ContentID: 1})
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestCreateCommentUnknownParent(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{}, &stubContentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Content, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &stubUserRepo{})

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, ContentID: 99, Body: "hi"})
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestCreateCommentSuccess(t *testing.T) {
	var created *models.Comment
	svc := newCommentServiceForTest(&stubCommentRepo{
		createFn: func(ctx context.Context, comment *models.Comment) error {
			comment.ID = 7
			created = comment
			return nil
		},
	}, &stubContentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Content, error) {
			return &models.Content{ID: id, Visible: true}, nil
		},
	}, &stubUserRepo{})

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 2, ContentID: 3, Body: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), comment.ID)
	assert.Equal(t, uint(2), created.UserID)
	assert.Equal(t, uint(3), created.ContentID)
	assert.True(t, created.Visible)
}

func TestListFeedRejectsMalformedFilters(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{
		listFeedFn: func(ctx context.Context, q repository.CommentQuery) ([]models.Comment, error) {
			t.Fatal("repository must not be reached for malformed filters")
			return nil, nil
		},
	}, &stubContentRepo{}, &stubUserRepo{})

	_, err := svc.ListFeed(context.Background(), ListCommentFeedInput{LikedBy: "abc"})
	assertAppErrorCode(t, err, models.CodeMalformedQuery)

	_, err = svc.ListFeed(context.Background(), ListCommentFeedInput{Author: "-2"})
	assertAppErrorCode(t, err, models.CodeMalformedQuery)
}

func TestListFeedFilterPrecedence(t *testing.T) {
	var captured repository.CommentQuery
	svc := newCommentServiceForTest(&stubCommentRepo{
		listFeedFn: func(ctx context.Context, q repository.CommentQuery) ([]models.Comment, error) {
			captured = q
			return []models.Comment{}, nil
		},
	}, &stubContentRepo{}, &stubUserRepo{})

	_, err := svc.ListFeed(context.Background(), ListCommentFeedInput{
		LikedBy: "3",
		Author:  "abc",
		Limit:   50,
	})
	require.NoError(t, err)
	require.NotNil(t, captured.LikedBy)
	assert.Equal(t, uint(3), *captured.LikedBy)
	assert.Nil(t, captured.AuthorID)
	assert.Equal(t, 50, captured.Limit)
}

func TestUpdateCommentOwnership(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			if id == 1 {
				return &models.Comment{ID: 1, UserID: 5, Body: "old", Visible: true}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		updateFn: func(ctx context.Context, comment *models.Comment) error { return nil },
	}, &stubContentRepo{}, &stubUserRepo{})

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 5, CommentID: 99, Body: "x"})
	assertAppErrorCode(t, err, models.CodeNotFound)

	_, err = svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 6, CommentID: 1, Body: "x"})
	assertAppErrorCode(t, err, models.CodeForbidden)

	updated, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 5, CommentID: 1, Body: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Body)
}

func TestDeleteCommentOwnership(t *testing.T) {
	deleted := false
	svc := newCommentServiceForTest(&stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 5, Visible: true}, nil
		},
		softDeleteFn: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}, &stubContentRepo{}, &stubUserRepo{})

	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 4, CommentID: 1})
	assertAppErrorCode(t, err, models.CodeForbidden)
	assert.False(t, deleted)

	err = svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 5, CommentID: 1})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCommentToggleLikeReportsOutcome(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, Visible: false}, nil
		},
		toggleLikeFn: func(ctx context.Context, userID, commentID uint) (bool, error) {
			return true, nil
		},
	}, &stubContentRepo{}, &stubUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "bob"}, nil
		},
	})

	res, err := svc.ToggleLike(context.Background(), 8, 12)
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, "bob", res.Username)
	assert.Equal(t, uint(12), res.TargetID)
}

func TestCommentToggleLikeCanceledSkipsUsernameLookup(t *testing.T) {
	userLookups := 0
	svc := newCommentServiceForTest(&stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, Visible: true}, nil
		},
		toggleLikeFn: func(ctx context.Context, userID, commentID uint) (bool, error) {
			return false, nil
		},
	}, &stubContentRepo{}, &stubUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			userLookups++
			return nil, errors.New("cache down")
		},
	})

	res, err := svc.ToggleLike(context.Background(), 8, 12)
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Empty(t, res.Username)
	assert.Zero(t, userLookups)
}

func TestCommentToggleLikeUnknownTarget(t *testing.T) {
	svc := newCommentServiceForTest(&stubCommentRepo{
		getByIDFn: func(ctx context.Context, id uint) (*models.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &stubContentRepo{}, &stubUserRepo{})

	_, err := svc.ToggleLike(context.Background(), 8, 404)
	assertAppErrorCode(t, err, models.CodeNotFound)
}
