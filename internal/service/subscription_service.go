package service

import (
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
)

// SubscriptionService business logic for follow relationships
type SubscriptionService interface {
	Follow(followerID int64, followeeUsername string) (*domain.FollowResponse, error)
	Unfollow(followerID int64, followeeUsername string) (*domain.FollowResponse, error)
	ListFollowers(username string) ([]*domain.UserResponse, error)
	ListFollowing(username string) ([]*domain.UserResponse, error)
}

type subscriptionService struct {
	repo     repository.SubscriptionRepository
	userRepo repository.UserRepository
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(
	repo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
) SubscriptionService {
	return &subscriptionService{repo: repo, userRepo: userRepo}
}

func (s *subscriptionService) Follow(followerID int64, followeeUsername string) (*domain.FollowResponse, error) {
	followee, err := s.userRepo.FindByUsername(followeeUsername)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	if followee.ID == followerID {
		return nil, common.ErrSelfFollow
	}

	exists, err := s.repo.Exists(followerID, followee.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrAlreadyFollowing
	}

	if err := s.repo.Create(followerID, followee.ID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountFollowers(followee.ID)
	if err != nil {
		return nil, err
	}

	return &domain.FollowResponse{Following: true, FollowerCount: count}, nil
}

func (s *subscriptionService) Unfollow(followerID int64, followeeUsername string) (*domain.FollowResponse, error) {
	followee, err := s.userRepo.FindByUsername(followeeUsername)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	exists, err := s.repo.Exists(followerID, followee.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFollowing
	}

	if err := s.repo.Delete(followerID, followee.ID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountFollowers(followee.ID)
	if err != nil {
		return nil, err
	}

	return &domain.FollowResponse{Following: false, FollowerCount: count}, nil
}

func (s *subscriptionService) ListFollowers(username string) ([]*domain.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	users, err := s.repo.ListFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *subscriptionService) ListFollowing(username string) ([]*domain.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	users, err := s.repo.ListFollowing(user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func toUserResponses(users []*domain.User) []*domain.UserResponse {
	responses := make([]*domain.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses
}
