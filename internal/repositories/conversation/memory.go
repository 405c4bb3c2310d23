package conversation

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	mu     sync.RWMutex
	items  []*domain.Conversation
	byID   map[string]*domain.Conversation
	logger logger.Logger
}

func NewMemory(logger logger.Logger) *Memory {
	return &Memory{
		byID:   make(map[string]*domain.Conversation),
		logger: logger.WithComponent("ConversationRepo"),
	}
}

var _ Repository = (*Memory)(nil)

func clone(c *domain.Conversation) *domain.Conversation {
	out := c.Clone()
	return &out
}

func (m *Memory) GetByID(_ context.Context, id string) (*domain.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(c), nil
}

func (m *Memory) List(_ context.Context) ([]*domain.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.items, func(c *domain.Conversation, _ int) *domain.Conversation {
		return clone(c)
	}), nil
}

func (m *Memory) Add(_ context.Context, conversation domain.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[conversation.ID]; ok {
		return ErrAlreadyExists
	}
	c := clone(&conversation)
	m.items = append(m.items, c)
	m.byID[c.ID] = c
	return nil
}

func (m *Memory) MarkRead(_ context.Context, id string) (*domain.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Unread = false
	return clone(c), nil
}

func (m *Memory) AppendMessage(_ context.Context, id string, msg domain.DirectMessage) (*domain.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Text
	c.UpdatedAt = msg.CreatedAt
	m.logger.Debug("Message appended", "conversation_id", id, "message_id", msg.ID)
	return clone(c), nil
}
