package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Inline(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostService(repo, userRepo, nil, nil, nil, nil, StorageInline)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	repo.On("Create", mock.MatchedBy(func(p *domain.Post) bool {
		return p.ContentText == "hello" && p.ContentKey == "" && p.Public
	})).Return(nil)

	view, err := svc.CreatePost(context.Background(), 1, &domain.CreatePostRequest{Content: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello", view.Content)
	assert.Equal(t, "alice", view.Author)
	repo.AssertExpectations(t)
}

func TestCreatePost_Remote_UploadThenCommit(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	content := new(mockContentStore)
	svc := NewPostService(repo, userRepo, nil, nil, content, nil, StorageRemote)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	content.On("Put", mock.Anything, int64(1), "hello").Return("posts/1_100_abc.txt", nil)
	repo.On("Create", mock.MatchedBy(func(p *domain.Post) bool {
		return p.ContentKey == "posts/1_100_abc.txt" && p.ContentText == ""
	})).Return(nil)

	_, err := svc.CreatePost(context.Background(), 1, &domain.CreatePostRequest{Content: "hello"})

	require.NoError(t, err)
	content.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreatePost_UploadFailureLeavesNoRow(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	content := new(mockContentStore)
	svc := NewPostService(repo, userRepo, nil, nil, content, nil, StorageRemote)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	content.On("Put", mock.Anything, int64(1), "hello").
		Return("", common.ErrStoreUnavailable)

	_, err := svc.CreatePost(context.Background(), 1, &domain.CreatePostRequest{Content: "hello"})

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_CommitFailureRemovesUpload(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	content := new(mockContentStore)
	svc := NewPostService(repo, userRepo, nil, nil, content, nil, StorageRemote)

	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	content.On("Put", mock.Anything, int64(1), "hello").Return("posts/1_100_abc.txt", nil)
	repo.On("Create", mock.Anything).Return(errors.New("db gone"))
	content.On("Remove", mock.Anything, "posts/1_100_abc.txt").Return()

	_, err := svc.CreatePost(context.Background(), 1, &domain.CreatePostRequest{Content: "hello"})

	assert.Error(t, err)
	content.AssertCalled(t, "Remove", mock.Anything, "posts/1_100_abc.txt")
}

func TestCreatePost_EmptyContentRejectedBeforeMutation(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	content := new(mockContentStore)
	svc := NewPostService(repo, userRepo, nil, nil, content, nil, StorageRemote)

	_, err := svc.CreatePost(context.Background(), 1, &domain.CreatePostRequest{Content: "  "})

	assert.ErrorIs(t, err, common.ErrEmptyContent)
	content.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetPost_PrivateHiddenFromOthers(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, nil, nil, nil, nil, nil, StorageInline)

	repo.On("FindByID", int64(5)).Return(&domain.Post{
		ID:          5,
		AuthorID:    1,
		ContentText: "secret",
		Public:      false,
	}, nil)

	_, err := svc.GetPost(context.Background(), 5, 2)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestGetPost_RemoteRowWithoutStoreFallsBack(t *testing.T) {
	repo := new(mockPostRepo)
	engagements := new(mockEngagementRepo)
	comments := new(mockCommentRepo)
	// Inline-mode service with no blob store, serving a row written in
	// remote mode
	svc := NewPostService(repo, nil, engagements, comments, nil, nil, StorageInline)

	repo.On("FindByID", int64(5)).Return(&domain.Post{
		ID:         5,
		AuthorID:   1,
		ContentKey: "posts/1_100_abc.txt",
		Public:     true,
	}, nil)
	engagements.On("CountLikes", int64(5)).Return(int64(0), nil)
	engagements.On("CountReposts", int64(5)).Return(int64(0), nil)
	comments.On("CountsByPost", []int64{5}).Return(map[int64]int64{}, nil)

	view, err := svc.GetPost(context.Background(), 5, 0)

	require.NoError(t, err)
	assert.Equal(t, PlaceholderContent, view.Content, "remote row without a store degrades, never panics")
}

func TestListByAuthor_IncludesPrivateForSelf(t *testing.T) {
	repo := new(mockPostRepo)
	userRepo := new(mockUserRepo)
	svc := NewPostService(repo, userRepo, nil, nil, nil, nil, StorageInline)

	userRepo.On("FindByUsername", "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
	repo.On("ListByAuthor", int64(1), true, 1, 20).
		Return([]*domain.Post{}, int64(0), nil)

	_, _, err := svc.ListByAuthor(context.Background(), "alice", 1, 1, 20)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
