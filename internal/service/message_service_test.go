package service

import (
	"testing"
	"time"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/pulseapp/pulse-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendMessage_Success(t *testing.T) {
	repo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(repo, userRepo)

	userRepo.On("FindByUsername", "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil)
	userRepo.On("FindByID", int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil)
	repo.On("Create", mock.MatchedBy(func(m *domain.Message) bool {
		return m.SenderID == 1 && m.RecipientID == 2 && m.Body == "hi"
	})).Return(nil)

	message, err := svc.Send(1, &domain.SendMessageRequest{To: "bob", Body: " hi "})

	require.NoError(t, err)
	assert.Equal(t, "hi", message.Body)
	repo.AssertExpectations(t)
}

func TestSendMessage_SelfRejected(t *testing.T) {
	repo := new(mockMessageRepo)
	userRepo := new(mockUserRepo)
	svc := NewMessageService(repo, userRepo)

	userRepo.On("FindByUsername", "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

	_, err := svc.Send(1, &domain.SendMessageRequest{To: "alice", Body: "hi"})

	assert.ErrorIs(t, err, common.ErrSelfMessage)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestMarkRead_RecipientOnly(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewMessageService(repo, nil)

	repo.On("FindByID", int64(5)).Return(&domain.Message{ID: 5, SenderID: 1, RecipientID: 2}, nil)

	err := svc.MarkRead(3, 5)

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewMessageService(repo, nil)

	readAt := time.Now().Add(-time.Hour)
	repo.On("FindByID", int64(5)).Return(&domain.Message{ID: 5, RecipientID: 2, ReadAt: &readAt}, nil)

	err := svc.MarkRead(2, 5)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}
