package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
)

func TestMessageService_Create(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.Message) bool {
		return m.Name == "Bob" && m.Email == "b@x.com" && m.Body == "hi there"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Message).ID = "msg-1"
	}).Return(nil)
	recorder := new(MockRecorder)
	recorder.On("RecordMessageCreated").Once()

	svc := NewMessageService(mockRepo, nil, recorder)
	message, err := svc.Create(context.Background(), "Bob", "b@x.com", "hi there")

	require.NoError(t, err)
	assert.Equal(t, "msg-1", message.ID)
	mockRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestMessageService_CreateFailure(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(errors.New("disk full"))

	svc := NewMessageService(mockRepo, nil, nil)
	message, err := svc.Create(context.Background(), "Bob", "b@x.com", "hi there")

	assert.Error(t, err)
	assert.Nil(t, message)
}

func TestMessageService_List(t *testing.T) {
	stored := []model.Message{{ID: "msg-2", Name: "Ann"}, {ID: "msg-1", Name: "Bob"}}

	mockRepo := new(MockMessageRepository)
	mockRepo.On("ListRecent", mock.Anything, MessageListLimit).Return(stored, nil)

	svc := NewMessageService(mockRepo, nil, nil)
	messages, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, messages)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_ListFailure(t *testing.T) {
	mockRepo := new(MockMessageRepository)
	mockRepo.On("ListRecent", mock.Anything, MessageListLimit).Return(nil, errors.New("timeout"))

	svc := NewMessageService(mockRepo, nil, nil)
	_, err := svc.List(context.Background())
	assert.Error(t, err)
}
