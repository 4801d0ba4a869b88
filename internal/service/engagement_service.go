package service

import (
	"context"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
	pkgcache "github.com/pulseapp/pulse-backend/pkg/cache"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
)

// EngagementService business logic for likes and reposts
type EngagementService interface {
	// ToggleLike adds a like, or removes it when one already exists.
	// At most one active like per (user, post) pair.
	ToggleLike(ctx context.Context, userID, postID int64) (*domain.LikeResponse, error)
	// Repost reposts a post, at most once per (user, post) pair
	Repost(ctx context.Context, userID, postID int64) (*domain.RepostResponse, error)
}

type engagementService struct {
	repo     repository.EngagementRepository
	postRepo repository.PostRepository
	cache    pkgcache.Service
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	repo repository.EngagementRepository,
	postRepo repository.PostRepository,
	cache pkgcache.Service,
) EngagementService {
	return &engagementService{repo: repo, postRepo: postRepo, cache: cache}
}

func (s *engagementService) ToggleLike(ctx context.Context, userID, postID int64) (*domain.LikeResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, common.ErrPostNotFound
	}

	has, err := s.repo.HasLike(userID, postID)
	if err != nil {
		return nil, err
	}

	if has {
		if err := s.repo.RemoveLike(userID, postID); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.AddLike(userID, postID); err != nil {
			return nil, err
		}
	}

	count, err := s.repo.CountLikes(postID)
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)

	return &domain.LikeResponse{
		LikeCount: count,
		Liked:     !has,
	}, nil
}

func (s *engagementService) Repost(ctx context.Context, userID, postID int64) (*domain.RepostResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, common.ErrPostNotFound
	}

	has, err := s.repo.HasRepost(userID, postID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, common.ErrAlreadyReposted
	}

	if err := s.repo.AddRepost(userID, postID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountReposts(postID)
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)

	return &domain.RepostResponse{
		RepostCount: count,
		Reposted:    true,
	}, nil
}

func (s *engagementService) invalidateFeed(ctx context.Context) {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to invalidate feed cache")
	}
}
