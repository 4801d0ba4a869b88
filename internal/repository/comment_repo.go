package repository

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	Create(comment *domain.Comment) error
	ListByPost(postID int64) ([]*domain.Comment, error)
	CountsByPost(postIDs []int64) (map[int64]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) ListByPost(postID int64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountsByPost(postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int64 `gorm:"column:post_id"`
		Cnt    int64 `gorm:"column:cnt"`
	}
	err := r.db.Model(&domain.Comment{}).
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
