package repository

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// EngagementRepository defines the interface for likes and reposts
type EngagementRepository interface {
	HasLike(userID, postID int64) (bool, error)
	AddLike(userID, postID int64) error
	RemoveLike(userID, postID int64) error
	CountLikes(postID int64) (int64, error)
	LikeCounts(postIDs []int64) (map[int64]int64, error)

	HasRepost(userID, postID int64) (bool, error)
	AddRepost(userID, postID int64) error
	CountReposts(postID int64) (int64, error)
	RepostCounts(postIDs []int64) (map[int64]int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) HasLike(userID, postID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) AddLike(userID, postID int64) error {
	return r.db.Create(&domain.Like{UserID: userID, PostID: postID}).Error
}

func (r *engagementRepository) RemoveLike(userID, postID int64) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.Like{}).Error
}

func (r *engagementRepository) CountLikes(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *engagementRepository) LikeCounts(postIDs []int64) (map[int64]int64, error) {
	return r.countByPost(&domain.Like{}, postIDs)
}

func (r *engagementRepository) HasRepost(userID, postID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Repost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) AddRepost(userID, postID int64) error {
	return r.db.Create(&domain.Repost{UserID: userID, PostID: postID}).Error
}

func (r *engagementRepository) CountReposts(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Repost{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *engagementRepository) RepostCounts(postIDs []int64) (map[int64]int64, error) {
	return r.countByPost(&domain.Repost{}, postIDs)
}

// countByPost groups association rows by post in one query
func (r *engagementRepository) countByPost(model interface{}, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int64 `gorm:"column:post_id"`
		Cnt    int64 `gorm:"column:cnt"`
	}
	err := r.db.Model(model).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Cnt
	}
	return counts, nil
}
