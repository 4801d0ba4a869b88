package repository

import (
	"time"

	"github.com/pulseapp/pulse-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct message persistence
type MessageRepository interface {
	Create(message *domain.Message) error
	FindByID(id int64) (*domain.Message, error)
	ListInbox(recipientID int64, page, limit int) ([]*domain.Message, int64, error)
	MarkRead(id int64, at time.Time) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *domain.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id int64) (*domain.Message, error) {
	var message domain.Message
	if err := r.db.Preload("Sender").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ListInbox(recipientID int64, page, limit int) ([]*domain.Message, int64, error) {
	var messages []*domain.Message
	var total int64

	q := r.db.Model(&domain.Message{}).Where("recipient_id = ?", recipientID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Sender").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *messageRepository) MarkRead(id int64, at time.Time) error {
	return r.db.Model(&domain.Message{}).
		Where("id = ? AND read_at IS NULL", id).
		UpdateColumn("read_at", at).Error
}
