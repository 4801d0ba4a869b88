package service

import (
	"strings"
	"time"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/pulseapp/pulse-backend/internal/repository"
)

// MessageService business logic for direct messages
type MessageService interface {
	Send(senderID int64, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	Inbox(userID int64, page, limit int) ([]*domain.MessageResponse, *common.Meta, error)
	MarkRead(userID, messageID int64) error
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(
	repo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageService {
	return &messageService{repo: repo, userRepo: userRepo}
}

func (s *messageService) Send(senderID int64, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, common.ErrEmptyContent
	}

	recipient, err := s.userRepo.FindByUsername(req.To)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	if recipient.ID == senderID {
		return nil, common.ErrSelfMessage
	}

	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	message := &domain.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Body:        body,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	message.Sender = sender
	return message.ToResponse(), nil
}

func (s *messageService) Inbox(userID int64, page, limit int) ([]*domain.MessageResponse, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	messages, total, err := s.repo.ListInbox(userID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = message.ToResponse()
	}

	meta := &common.Meta{Page: page, Limit: limit, Total: total}
	return responses, meta, nil
}

// MarkRead marks a message as read. Only the recipient may do so.
func (s *messageService) MarkRead(userID, messageID int64) error {
	message, err := s.repo.FindByID(messageID)
	if err != nil {
		return common.ErrMessageNotFound
	}
	if message.RecipientID != userID {
		return common.ErrForbidden
	}
	if message.ReadAt != nil {
		return nil
	}
	return s.repo.MarkRead(messageID, time.Now())
}
