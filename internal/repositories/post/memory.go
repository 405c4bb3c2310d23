package post

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	mu     sync.RWMutex
	items  []*domain.Post
	byID   map[string]*domain.Post
	logger logger.Logger
}

func NewMemory(logger logger.Logger) *Memory {
	return &Memory{
		byID:   make(map[string]*domain.Post),
		logger: logger.WithComponent("PostRepo"),
	}
}

var _ Repository = (*Memory)(nil)

func clone(p *domain.Post) *domain.Post {
	c := p.Clone()
	return &c
}

func (m *Memory) GetByID(_ context.Context, id string) (*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func (m *Memory) List(_ context.Context) ([]*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.items, func(p *domain.Post, _ int) *domain.Post {
		return clone(p)
	}), nil
}

func (m *Memory) ListByUser(_ context.Context, userID string) ([]*domain.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.FilterMap(m.items, func(p *domain.Post, _ int) (*domain.Post, bool) {
		if p.UserID != userID {
			return nil, false
		}
		return clone(p), true
	}), nil
}

func (m *Memory) Prepend(_ context.Context, post domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[post.ID]; ok {
		return ErrAlreadyExists
	}

	p := clone(&post)
	m.items = append([]*domain.Post{p}, m.items...)
	m.byID[p.ID] = p
	m.logger.Debug("Post stored", "post_id", p.ID, "user_id", p.UserID)
	return nil
}

func (m *Memory) ToggleLike(_ context.Context, id string) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	p.IsLiked = !p.IsLiked
	if p.IsLiked {
		p.Likes++
	} else if p.Likes > 0 {
		p.Likes--
	}
	return clone(p), nil
}

func (m *Memory) AppendComment(_ context.Context, id string, comment domain.Comment) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	p.Comments = append(p.Comments, comment)
	m.logger.Debug("Comment added", "post_id", id, "comment_id", comment.ID)
	return clone(p), nil
}
