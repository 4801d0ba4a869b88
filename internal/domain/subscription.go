package domain

import "time"

// Subscription represents a follow relationship: follower follows followee.
// At most one row per ordered pair; self-follow is rejected in the service.
type Subscription struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	ID         int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID int64 `gorm:"column:follower_id;not null;uniqueIndex:idx_sub_pair" json:"follower_id"`
	FolloweeID int64 `gorm:"column:followee_id;not null;uniqueIndex:idx_sub_pair;index" json:"followee_id"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// FollowResponse is the DTO for follow/unfollow actions
type FollowResponse struct {
	FollowerCount int64 `json:"follower_count"`
	Following     bool  `json:"following"`
}
