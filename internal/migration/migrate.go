package migration

import (
	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables. Existing tables are altered in
// place, missing ones are created.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Like{},
		&domain.Repost{},
		&domain.Comment{},
		&domain.Subscription{},
		&domain.Message{},
	)
}
