package repository

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id int64) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	ExistsByUsername(username string) (bool, error)
	SetVerificationRequested(id int64) error
	SetVerified(id int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) SetVerificationRequested(id int64) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		UpdateColumn("verification_requested", true).Error
}

func (r *userRepository) SetVerified(id int64) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":               true,
			"verification_requested": false,
		}).Error
}
