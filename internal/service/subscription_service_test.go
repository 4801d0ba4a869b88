package service

import (
	"testing"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollow_Success(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	userRepo := new(mockUserRepo)
	svc := NewSubscriptionService(repo, userRepo)

	userRepo.On("FindByUsername", "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil)
	repo.On("Exists", int64(1), int64(2)).Return(false, nil)
	repo.On("Create", int64(1), int64(2)).Return(nil)
	repo.On("CountFollowers", int64(2)).Return(int64(5), nil)

	result, err := svc.Follow(1, "bob")

	require.NoError(t, err)
	assert.True(t, result.Following)
	assert.Equal(t, int64(5), result.FollowerCount)
}

func TestFollow_SelfRejected(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	userRepo := new(mockUserRepo)
	svc := NewSubscriptionService(repo, userRepo)

	userRepo.On("FindByUsername", "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	_, err := svc.Follow(1, "alice")

	assert.ErrorIs(t, err, common.ErrSelfFollow)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFollow_DuplicateRejected(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	userRepo := new(mockUserRepo)
	svc := NewSubscriptionService(repo, userRepo)

	userRepo.On("FindByUsername", "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil)
	repo.On("Exists", int64(1), int64(2)).Return(true, nil)

	_, err := svc.Follow(1, "bob")

	assert.ErrorIs(t, err, common.ErrAlreadyFollowing)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnfollow_NotFollowing(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	userRepo := new(mockUserRepo)
	svc := NewSubscriptionService(repo, userRepo)

	userRepo.On("FindByUsername", "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil)
	repo.On("Exists", int64(1), int64(2)).Return(false, nil)

	_, err := svc.Unfollow(1, "bob")

	assert.ErrorIs(t, err, common.ErrNotFollowing)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnfollow_Success(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	userRepo := new(mockUserRepo)
	svc := NewSubscriptionService(repo, userRepo)

	userRepo.On("FindByUsername", "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil)
	repo.On("Exists", int64(1), int64(2)).Return(true, nil)
	repo.On("Delete", int64(1), int64(2)).Return(nil)
	repo.On("CountFollowers", int64(2)).Return(int64(4), nil)

	result, err := svc.Unfollow(1, "bob")

	require.NoError(t, err)
	assert.False(t, result.Following)
	assert.Equal(t, int64(4), result.FollowerCount)
}
