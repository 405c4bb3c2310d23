package user

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	mu     sync.RWMutex
	items  []*domain.User
	byID   map[string]*domain.User
	logger logger.Logger
}

func NewMemory(logger logger.Logger) *Memory {
	return &Memory{
		byID:   make(map[string]*domain.User),
		logger: logger.WithComponent("UserRepo"),
	}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *Memory) List(_ context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.items, func(u *domain.User, _ int) *domain.User {
		out := *u
		return &out
	}), nil
}

func (m *Memory) Add(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[user.ID]; ok {
		return ErrAlreadyExists
	}
	u := user
	m.items = append(m.items, &u)
	m.byID[u.ID] = &u
	return nil
}

func (m *Memory) IncrementPostCount(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Posts++
	m.logger.Debug("Post count updated", "user_id", id, "posts", u.Posts)
	out := *u
	return &out, nil
}
