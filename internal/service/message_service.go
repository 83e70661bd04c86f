package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/metrics"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	// MessageListLimit caps how many messages the inbox returns.
	MessageListLimit = 50

	messagesCacheKey     = "messages:recent"
	messagesCacheVersion = "messages:version"
	messagesCacheTTL     = time.Minute
)

// MessageService exposes the contact inbox.
type MessageService interface {
	Create(ctx context.Context, name, email, body string) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	repo    repository.MessageRepository
	cache   *cache.Client
	metrics metrics.Recorder
}

// NewMessageService builds a MessageService with repository and cache.
func NewMessageService(repo repository.MessageRepository, cache *cache.Client, recorder metrics.Recorder) MessageService {
	return &messageService{repo: repo, cache: cache, metrics: metrics.OrNop(recorder)}
}

func (s *messageService) Create(ctx context.Context, name, email, body string) (*model.Message, error) {
	message := &model.Message{
		Name:  name,
		Email: email,
		Body:  body,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	_ = s.cache.Bump(ctx, messagesCacheVersion)
	s.metrics.RecordMessageCreated()
	return message, nil
}

// List serves the inbox from the cache entry of the current version. A list
// read before a concurrent Create is stored under the old version and never served.
func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	key := versionedKey(messagesCacheKey, s.cache.Version(ctx, messagesCacheVersion))
	var cached []model.Message
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	messages, err := s.repo.ListRecent(ctx, MessageListLimit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	s.cache.SetJSON(ctx, key, messages, messagesCacheTTL)
	return messages, nil
}

func versionedKey(key string, version int64) string {
	return key + ":" + strconv.FormatInt(version, 10)
}
