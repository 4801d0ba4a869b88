package repository

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post persistence
type PostRepository interface {
	Create(post *domain.Post) error
	Delete(id int64) error
	FindByID(id int64) (*domain.Post, error)
	ListPublic(page, limit int) ([]*domain.Post, int64, error)
	ListPublicCandidates(limit int) ([]*domain.Post, int64, error)
	ListByAuthor(authorID int64, includePrivate bool, page, limit int) ([]*domain.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Post{}, id).Error
}

func (r *postRepository) FindByID(id int64) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPublic returns public posts, newest first
func (r *postRepository) ListPublic(page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	q := r.db.Model(&domain.Post{}).Where("public = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListPublicCandidates returns the newest public posts up to limit, unpaged,
// plus the total count of public posts. The ranked feed scores this window
// in memory and pages over the result, so pagination must not happen here.
func (r *postRepository) ListPublicCandidates(limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	q := r.db.Model(&domain.Post{}).Where("public = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByAuthor(authorID int64, includePrivate bool, page, limit int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	q := r.db.Model(&domain.Post{}).Where("author_id = ?", authorID)
	if !includePrivate {
		q = q.Where("public = ?", true)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
