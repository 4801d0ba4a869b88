package repository

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for follow relationships
type SubscriptionRepository interface {
	Exists(followerID, followeeID int64) (bool, error)
	Create(followerID, followeeID int64) error
	Delete(followerID, followeeID int64) error
	CountFollowers(userID int64) (int64, error)
	CountFollowing(userID int64) (int64, error)
	FollowerCounts(userIDs []int64) (map[int64]int64, error)
	ListFollowers(userID int64) ([]*domain.User, error)
	ListFollowing(userID int64) ([]*domain.User, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Exists(followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subscriptionRepository) Create(followerID, followeeID int64) error {
	return r.db.Create(&domain.Subscription{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}).Error
}

func (r *subscriptionRepository) Delete(followerID, followeeID int64) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&domain.Subscription{}).Error
}

func (r *subscriptionRepository) CountFollowers(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountFollowing(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FollowerCounts groups subscription rows by followee in one query
func (r *subscriptionRepository) FollowerCounts(userIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		FolloweeID int64 `gorm:"column:followee_id"`
		Cnt        int64 `gorm:"column:cnt"`
	}
	err := r.db.Model(&domain.Subscription{}).
		Select("followee_id, COUNT(*) AS cnt").
		Where("followee_id IN ?", userIDs).
		Group("followee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.FolloweeID] = row.Cnt
	}
	return counts, nil
}

func (r *subscriptionRepository) ListFollowers(userID int64) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Model(&domain.User{}).
		Joins("JOIN subscriptions ON subscriptions.follower_id = users.id").
		Where("subscriptions.followee_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *subscriptionRepository) ListFollowing(userID int64) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.Model(&domain.User{}).
		Joins("JOIN subscriptions ON subscriptions.followee_id = users.id").
		Where("subscriptions.follower_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
