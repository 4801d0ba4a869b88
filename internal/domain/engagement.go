package domain

import "time"

// Like represents a like on a post. At most one active like per
// (user, post) pair; liking again removes it (toggle).
type Like struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	ID     int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID int64 `gorm:"column:post_id;not null;uniqueIndex:idx_like_user_post;index" json:"post_id"`
}

func (Like) TableName() string {
	return "likes"
}

// Repost represents a repost of a post. At most one per (user, post) pair.
type Repost struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	ID     int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_repost_user_post" json:"user_id"`
	PostID int64 `gorm:"column:post_id;not null;uniqueIndex:idx_repost_user_post;index" json:"post_id"`
}

func (Repost) TableName() string {
	return "reposts"
}

// LikeResponse is the DTO for like toggle actions
type LikeResponse struct {
	LikeCount int64 `json:"like_count"`
	Liked     bool  `json:"liked"`
}

// RepostResponse is the DTO for repost actions
type RepostResponse struct {
	RepostCount int64 `json:"repost_count"`
	Reposted    bool  `json:"reposted"`
}
