package domain

import "time"

// Post represents a text post. Exactly one of ContentText and ContentKey is
// populated, depending on the configured content storage mode: inline keeps
// the body in this row, remote stores it in the blob store and records only
// the key. The row is always the source of truth for existence; the blob
// store only owns body bytes.
type Post struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	ContentText string `gorm:"column:content_text;type:text" json:"-"`
	ContentKey  string `gorm:"column:content_key;size:256" json:"-"`

	ID       int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID int64 `gorm:"column:author_id;not null;index" json:"author_id"`

	Public bool `gorm:"column:public;default:true" json:"public"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest is the request body for creating a post
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Public  *bool  `json:"public,omitempty"`
}

// PostView is the hydrated, display-ready view of a post. It is produced by
// the feed/post services and carries the resolved body plus engagement
// counts; the persisted Post entity never holds transient fields.
type PostView struct {
	CreatedAt      string  `json:"created_at"`
	Author         string  `json:"author"`
	Content        string  `json:"content"`
	ID             int64   `json:"id"`
	AuthorID       int64   `json:"author_id"`
	LikeCount      int64   `json:"like_count"`
	RepostCount    int64   `json:"repost_count"`
	CommentCount   int64   `json:"comment_count"`
	Score          float64 `json:"score,omitempty"`
	AuthorVerified bool    `json:"author_verified"`
	Public         bool    `json:"public"`
}
