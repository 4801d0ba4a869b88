package service

import (
	"context"
	"errors"
	"time"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/ranking"
	"github.com/pulseapp/pulse-backend/internal/repository"
	pkgcache "github.com/pulseapp/pulse-backend/pkg/cache"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
)

const timeFormat = time.RFC3339

// Feed sort orders
const (
	// SortTop orders by ranking score
	SortTop = "top"
	// SortRecent orders by creation time only
	SortRecent = "recent"
)

// rankCandidateLimit bounds how many of the newest public posts compete for
// the ranked feed. Ranking is an in-memory sort over the whole candidate
// set, so it cannot ride the SQL pagination the recent sort uses: a page of
// the top feed is a slice of the ranked candidates, not a ranked slice of a
// recency page.
const rankCandidateLimit = 500

// FeedService assembles the public feed
type FeedService interface {
	GetFeed(ctx context.Context, sort string, page, limit int) ([]*domain.PostView, *common.Meta, error)
}

// feedPage is the cached unit: one page of views plus the total that its
// pagination meta reported.
type feedPage struct {
	Views []*domain.PostView `json:"views"`
	Total int64              `json:"total"`
}

// feedSignals holds the batch-loaded engagement counts for one candidate set
type feedSignals struct {
	likes     map[int64]int64
	reposts   map[int64]int64
	comments  map[int64]int64
	followers map[int64]int64
}

type feedService struct {
	posts         repository.PostRepository
	engagements   repository.EngagementRepository
	comments      repository.CommentRepository
	subscriptions repository.SubscriptionRepository
	content       ContentStore
	cache         pkgcache.Service
}

// NewFeedService creates a new FeedService
func NewFeedService(
	posts repository.PostRepository,
	engagements repository.EngagementRepository,
	comments repository.CommentRepository,
	subscriptions repository.SubscriptionRepository,
	content ContentStore,
	cache pkgcache.Service,
) FeedService {
	return &feedService{
		posts:         posts,
		engagements:   engagements,
		comments:      comments,
		subscriptions: subscriptions,
		content:       content,
		cache:         cache,
	}
}

// GetFeed returns one page of the public feed. Signals are recomputed from
// relational state on every call; ranking is a pure function of them.
func (s *feedService) GetFeed(ctx context.Context, sort string, page, limit int) ([]*domain.PostView, *common.Meta, error) {
	if sort != SortRecent {
		sort = SortTop
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	// Short-TTL cache; engagement writes invalidate it
	if s.cache != nil && s.cache.IsAvailable() {
		var cached feedPage
		if err := s.cache.GetFeed(ctx, sort, page, limit, &cached); err == nil {
			meta := &common.Meta{Sort: sort, Page: page, Limit: limit, Total: cached.Total}
			return cached.Views, meta, nil
		} else if !errors.Is(err, pkgcache.ErrCacheMiss) {
			pkglogger.GetLogger().Warn().Err(err).Msg("feed cache read failed")
		}
	}

	var (
		views []*domain.PostView
		total int64
		err   error
	)
	if sort == SortTop {
		views, total, err = s.topPage(ctx, page, limit)
	} else {
		var posts []*domain.Post
		posts, total, err = s.posts.ListPublic(page, limit)
		if err == nil {
			views, err = s.hydrate(ctx, posts)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetFeed(ctx, sort, page, limit, feedPage{Views: views, Total: total}); err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("feed cache write failed")
		}
	}

	meta := &common.Meta{Sort: sort, Page: page, Limit: limit, Total: total}
	return views, meta, nil
}

// topPage ranks the candidate window by score and slices out the requested
// page. A high-scoring post sorts before fresher low-scoring ones anywhere
// inside the window, regardless of which recency page it would land on.
func (s *feedService) topPage(ctx context.Context, page, limit int) ([]*domain.PostView, int64, error) {
	candidates, total, err := s.posts.ListPublicCandidates(rankCandidateLimit)
	if err != nil {
		return nil, 0, err
	}
	if len(candidates) == 0 {
		return []*domain.PostView{}, total, nil
	}

	sig, err := s.loadSignals(candidates)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[int64]*domain.Post, len(candidates))
	entries := make([]ranking.Entry, len(candidates))
	for i, post := range candidates {
		byID[post.ID] = post
		entries[i] = ranking.Entry{
			PostID: post.ID,
			Signals: ranking.Signals{
				LikeCount:      sig.likes[post.ID],
				FollowerCount:  sig.followers[post.AuthorID],
				AuthorVerified: post.Author != nil && post.Author.Verified,
				CreatedAt:      post.CreatedAt,
			},
		}
	}
	ranking.Rank(entries, time.Now())

	start := (page - 1) * limit
	if start >= len(entries) {
		return []*domain.PostView{}, total, nil
	}
	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}

	// Body hydration only for the served slice, never the whole window
	views := make([]*domain.PostView, 0, end-start)
	for _, entry := range entries[start:end] {
		view := s.buildFeedView(ctx, byID[entry.PostID], sig)
		view.Score = entry.Score
		views = append(views, view)
	}
	return views, total, nil
}

// hydrate turns an already-ordered page of posts into views. Count queries
// failing fails the whole page; body fetches degrade per post.
func (s *feedService) hydrate(ctx context.Context, posts []*domain.Post) ([]*domain.PostView, error) {
	if len(posts) == 0 {
		return []*domain.PostView{}, nil
	}

	sig, err := s.loadSignals(posts)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.PostView, len(posts))
	for i, post := range posts {
		views[i] = s.buildFeedView(ctx, post, sig)
	}
	return views, nil
}

// loadSignals batch-loads engagement counts for one candidate set
func (s *feedService) loadSignals(posts []*domain.Post) (*feedSignals, error) {
	postIDs := make([]int64, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	seenAuthors := make(map[int64]struct{}, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
		if _, ok := seenAuthors[post.AuthorID]; !ok {
			seenAuthors[post.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	likes, err := s.engagements.LikeCounts(postIDs)
	if err != nil {
		return nil, err
	}
	reposts, err := s.engagements.RepostCounts(postIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.CountsByPost(postIDs)
	if err != nil {
		return nil, err
	}
	followers, err := s.subscriptions.FollowerCounts(authorIDs)
	if err != nil {
		return nil, err
	}

	return &feedSignals{
		likes:     likes,
		reposts:   reposts,
		comments:  comments,
		followers: followers,
	}, nil
}

// buildFeedView hydrates one post. A remote body that cannot be fetched, or
// a remote row served while no blob store is configured, degrades to the
// placeholder without failing the page.
func (s *feedService) buildFeedView(ctx context.Context, post *domain.Post, sig *feedSignals) *domain.PostView {
	view := &domain.PostView{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		Public:       post.Public,
		CreatedAt:    post.CreatedAt.Format(timeFormat),
		LikeCount:    sig.likes[post.ID],
		RepostCount:  sig.reposts[post.ID],
		CommentCount: sig.comments[post.ID],
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
