package service

import (
	"context"
	"time"

	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(post *domain.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepo) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockPostRepo) FindByID(id int64) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) ListPublic(page, limit int) ([]*domain.Post, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) ListPublicCandidates(limit int) ([]*domain.Post, int64, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *mockPostRepo) ListByAuthor(authorID int64, includePrivate bool, page, limit int) ([]*domain.Post, int64, error) {
	args := m.Called(authorID, includePrivate, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Post), args.Get(1).(int64), args.Error(2)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByID(id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) SetVerificationRequested(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) SetVerified(id int64) error {
	return m.Called(id).Error(0)
}

// --- Mock EngagementRepository ---

type mockEngagementRepo struct {
	mock.Mock
}

func (m *mockEngagementRepo) HasLike(userID, postID int64) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagementRepo) AddLike(userID, postID int64) error {
	return m.Called(userID, postID).Error(0)
}

func (m *mockEngagementRepo) RemoveLike(userID, postID int64) error {
	return m.Called(userID, postID).Error(0)
}

func (m *mockEngagementRepo) CountLikes(postID int64) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEngagementRepo) LikeCounts(postIDs []int64) (map[int64]int64, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *mockEngagementRepo) HasRepost(userID, postID int64) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagementRepo) AddRepost(userID, postID int64) error {
	return m.Called(userID, postID).Error(0)
}

func (m *mockEngagementRepo) CountReposts(postID int64) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEngagementRepo) RepostCounts(postIDs []int64) (map[int64]int64, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(comment *domain.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) ListByPost(postID int64) ([]*domain.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) CountsByPost(postIDs []int64) (map[int64]int64, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

// --- Mock SubscriptionRepository ---

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Exists(followerID, followeeID int64) (bool, error) {
	args := m.Called(followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepo) Create(followerID, followeeID int64) error {
	return m.Called(followerID, followeeID).Error(0)
}

func (m *mockSubscriptionRepo) Delete(followerID, followeeID int64) error {
	return m.Called(followerID, followeeID).Error(0)
}

func (m *mockSubscriptionRepo) CountFollowers(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepo) CountFollowing(userID int64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepo) FollowerCounts(userIDs []int64) (map[int64]int64, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *mockSubscriptionRepo) ListFollowers(userID int64) ([]*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockSubscriptionRepo) ListFollowing(userID int64) ([]*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// --- Mock MessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(message *domain.Message) error {
	return m.Called(message).Error(0)
}

func (m *mockMessageRepo) FindByID(id int64) (*domain.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) ListInbox(recipientID int64, page, limit int) ([]*domain.Message, int64, error) {
	args := m.Called(recipientID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Message), args.Get(1).(int64), args.Error(2)
}

func (m *mockMessageRepo) MarkRead(id int64, at time.Time) error {
	return m.Called(id, at).Error(0)
}

// --- Mock ContentStore ---

type mockContentStore struct {
	mock.Mock
}

func (m *mockContentStore) Put(ctx context.Context, authorID int64, content string) (string, error) {
	args := m.Called(ctx, authorID, content)
	return args.String(0), args.Error(1)
}

func (m *mockContentStore) Get(ctx context.Context, key string) string {
	return m.Called(ctx, key).String(0)
}

func (m *mockContentStore) Remove(ctx context.Context, key string) {
	m.Called(ctx, key)
}
