package domain

import "time"

// Message represents a direct message between two users
type Message struct {
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`

	Body string `gorm:"column:body;type:text;not null" json:"body"`

	ID          int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SenderID    int64 `gorm:"column:sender_id;not null;index" json:"sender_id"`
	RecipientID int64 `gorm:"column:recipient_id;not null;index" json:"recipient_id"`

	Sender *User `gorm:"foreignKey:SenderID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest is the request body for sending a direct message
type SendMessageRequest struct {
	To   string `json:"to" binding:"required"`
	Body string `json:"body" binding:"required"`
}

// MessageResponse is the message DTO
type MessageResponse struct {
	CreatedAt string `json:"created_at"`
	ReadAt    string `json:"read_at,omitempty"`
	From      string `json:"from"`
	Body      string `json:"body"`
	ID        int64  `json:"id"`
	IsRead    bool   `json:"is_read"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	resp := &MessageResponse{
		ID:        m.ID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		IsRead:    m.ReadAt != nil,
	}
	if m.Sender != nil {
		resp.From = m.Sender.Username
	}
	if m.ReadAt != nil {
		resp.ReadAt = m.ReadAt.Format(time.RFC3339)
	}
	return resp
}
