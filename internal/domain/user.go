package domain

import "time"

// User represents an account
type User struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Username     string `gorm:"column:username;size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:128;not null" json:"-"`

	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Verified marks trusted accounts; the feed ranker boosts their fresh posts
	Verified              bool `gorm:"column:verified;default:false" json:"verified"`
	VerificationRequested bool `gorm:"column:verification_requested;default:false" json:"-"`
	IsAdmin               bool `gorm:"column:is_admin;default:false" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse is the public profile DTO
type UserResponse struct {
	CreatedAt      string `json:"created_at"`
	Username       string `json:"username"`
	ID             int64  `json:"id"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	Verified       bool   `json:"verified"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
