package service

import (
	"context"
	"strings"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
	pkgcache "github.com/pulseapp/pulse-backend/pkg/cache"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
)

// Content storage modes
const (
	// StorageInline keeps post bodies in the posts table
	StorageInline = "inline"
	// StorageRemote stores post bodies in the blob store and records only
	// the key in the posts table
	StorageRemote = "remote"
)

// PostService business logic for posts
type PostService interface {
	CreatePost(ctx context.Context, authorID int64, req *domain.CreatePostRequest) (*domain.PostView, error)
	GetPost(ctx context.Context, id int64, viewerID int64) (*domain.PostView, error)
	ListByAuthor(ctx context.Context, username string, viewerID int64, page, limit int) ([]*domain.PostView, *common.Meta, error)
}

type postService struct {
	repo        repository.PostRepository
	userRepo    repository.UserRepository
	engagements repository.EngagementRepository
	comments    repository.CommentRepository
	content     ContentStore
	cache       pkgcache.Service
	storageMode string
}

// NewPostService creates a new PostService
func NewPostService(
	repo repository.PostRepository,
	userRepo repository.UserRepository,
	engagements repository.EngagementRepository,
	comments repository.CommentRepository,
	content ContentStore,
	cache pkgcache.Service,
	storageMode string,
) PostService {
	if storageMode != StorageRemote {
		storageMode = StorageInline
	}
	return &postService{
		repo:        repo,
		userRepo:    userRepo,
		engagements: engagements,
		comments:    comments,
		content:     content,
		cache:       cache,
		storageMode: storageMode,
	}
}

// CreatePost creates a new post. In remote mode the body is uploaded to the
// blob store first and the relational row committed second, so a failed
// upload leaves no row behind and a failed commit leaks at most one remote
// object.
func (s *postService) CreatePost(ctx context.Context, authorID int64, req *domain.CreatePostRequest) (*domain.PostView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, common.ErrEmptyContent
	}

	author, err := s.userRepo.FindByID(authorID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	post := &domain.Post{
		AuthorID: authorID,
		Public:   true,
	}
	if req.Public != nil {
		post.Public = *req.Public
	}

	if s.storageMode == StorageRemote {
		key, err := s.content.Put(ctx, authorID, content)
		if err != nil {
			return nil, err
		}
		post.ContentKey = key
	} else {
		post.ContentText = content
	}

	if err := s.repo.Create(post); err != nil {
		if post.ContentKey != "" {
			// Upload succeeded but the commit did not; clean up the orphan
			s.content.Remove(ctx, post.ContentKey)
		}
		return nil, err
	}

	s.invalidateFeed(ctx)

	return &domain.PostView{
		ID:             post.ID,
		AuthorID:       authorID,
		Author:         author.Username,
		AuthorVerified: author.Verified,
		Content:        content,
		Public:         post.Public,
		CreatedAt:      post.CreatedAt.Format(timeFormat),
	}, nil
}

// GetPost returns a single hydrated post
func (s *postService) GetPost(ctx context.Context, id int64, viewerID int64) (*domain.PostView, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrPostNotFound
	}
	if !post.Public && post.AuthorID != viewerID {
		return nil, common.ErrPostNotFound
	}

	view := s.buildView(ctx, post)

	if likes, err := s.engagements.CountLikes(id); err == nil {
		view.LikeCount = likes
	}
	if reposts, err := s.engagements.CountReposts(id); err == nil {
		view.RepostCount = reposts
	}
	if counts, err := s.comments.CountsByPost([]int64{id}); err == nil {
		view.CommentCount = counts[id]
	}

	return view, nil
}

// ListByAuthor returns an author's posts, newest first. Non-public posts are
// visible only to the author.
func (s *postService) ListByAuthor(ctx context.Context, username string, viewerID int64, page, limit int) ([]*domain.PostView, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, common.ErrUserNotFound
	}

	includePrivate := author.ID == viewerID
	posts, total, err := s.repo.ListByAuthor(author.ID, includePrivate, page, limit)
	if err != nil {
		return nil, nil, err
	}

	views := make([]*domain.PostView, len(posts))
	for i, post := range posts {
		views[i] = s.buildView(ctx, post)
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return views, meta, nil
}

// buildView hydrates a post row into its display view. Remote bodies that
// cannot be fetched, or remote rows served while no blob store is wired
// (a deployment switched back to inline mode), degrade to the placeholder
// without failing the batch.
func (s *postService) buildView(ctx context.Context, post *domain.Post) *domain.PostView {
	view := &domain.PostView{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Public:    post.Public,
		CreatedAt: post.CreatedAt.Format(timeFormat),
	}
	if post.Author != nil {
		view.Author = post.Author.Username
		view.AuthorVerified = post.Author.Verified
	}
	switch {
	case post.ContentKey == "":
		view.Content = post.ContentText
	case s.content == nil:
		view.Content = PlaceholderContent
	default:
		view.Content = s.content.Get(ctx, post.ContentKey)
	}
	return view
}

func (s *postService) invalidateFeed(ctx context.Context) {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("failed to invalidate feed cache")
	}
}
