package service

import (
	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
)

// UserService profiles and account verification
type UserService interface {
	GetProfile(username string) (*domain.UserResponse, error)
	// RequestVerification flags the account for review
	RequestVerification(userID int64) error
	// ApproveVerification marks the user verified. Admin only; the handler
	// enforces the admin check.
	ApproveVerification(username string) error
}

type userService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
) UserService {
	return &userService{userRepo: userRepo, subRepo: subRepo}
}

func (s *userService) GetProfile(username string) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	resp := user.ToResponse()
	if count, err := s.subRepo.CountFollowers(user.ID); err == nil {
		resp.FollowerCount = count
	}
	if count, err := s.subRepo.CountFollowing(user.ID); err == nil {
		resp.FollowingCount = count
	}
	return resp, nil
}

func (s *userService) RequestVerification(userID int64) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return common.ErrUserNotFound
	}
	if user.Verified {
		return common.ErrAlreadyVerified
	}
	if user.VerificationRequested {
		return common.ErrAlreadyRequested
	}
	return s.userRepo.SetVerificationRequested(userID)
}

func (s *userService) ApproveVerification(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return common.ErrUserNotFound
	}
	if user.Verified {
		return common.ErrAlreadyVerified
	}
	return s.userRepo.SetVerified(user.ID)
}
