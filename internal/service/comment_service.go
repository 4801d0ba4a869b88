package service

import (
	"strings"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
)

// CommentService business logic for comments
type CommentService interface {
	CreateComment(userID, postID int64, req *domain.CreateCommentRequest) (*domain.CommentResponse, error)
	ListComments(postID int64) ([]*domain.CommentResponse, error)
}

type commentService struct {
	repo     repository.CommentRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	repo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{repo: repo, postRepo: postRepo, userRepo: userRepo}
}

func (s *commentService) CreateComment(userID, postID int64, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, common.ErrEmptyContent
	}

	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, common.ErrPostNotFound
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	comment := &domain.Comment{
		UserID: userID,
		PostID: postID,
		Body:   body,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	comment.User = user
	return comment.ToResponse(), nil
}

func (s *commentService) ListComments(postID int64) ([]*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, common.ErrPostNotFound
	}

	comments, err := s.repo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = comment.ToResponse()
	}
	return responses, nil
}
