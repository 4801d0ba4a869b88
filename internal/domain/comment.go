package domain

import "time"

// Comment represents a comment on a post
type Comment struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Body string `gorm:"column:body;type:text;not null" json:"body"`

	ID     int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"column:user_id;not null;index" json:"user_id"`
	PostID int64 `gorm:"column:post_id;not null;index" json:"post_id"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest is the request body for creating a comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentResponse is the comment DTO
type CommentResponse struct {
	CreatedAt string `json:"created_at"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
}

// ToResponse converts Comment to CommentResponse
func (c *Comment) ToResponse() *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.User != nil {
		resp.Author = c.User.Username
	}
	return resp
}
