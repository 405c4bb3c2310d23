package story

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	mu     sync.RWMutex
	items  []*domain.Story
	byID   map[string]*domain.Story
	logger logger.Logger
}

func NewMemory(logger logger.Logger) *Memory {
	return &Memory{
		byID:   make(map[string]*domain.Story),
		logger: logger.WithComponent("StoryRepo"),
	}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) GetByID(_ context.Context, id string) (*domain.Story, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := s.Clone()
	return &out, nil
}

func (m *Memory) List(_ context.Context) ([]*domain.Story, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.items, func(s *domain.Story, _ int) *domain.Story {
		c := s.Clone()
		return &c
	}), nil
}

func (m *Memory) Prepend(_ context.Context, story domain.Story) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[story.ID]; ok {
		return ErrAlreadyExists
	}

	s := story.Clone()
	m.items = append([]*domain.Story{&s}, m.items...)
	m.byID[s.ID] = &s
	m.logger.Debug("Story stored", "story_id", s.ID, "media", len(s.Media))
	return nil
}

func (m *Memory) MarkViewed(_ context.Context, id string) (*domain.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.Viewed = true
	out := s.Clone()
	return &out, nil
}
