package post

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-feed/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("post already exists")
	ErrNotFound      = errors.New("post not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Post, error)

	// List returns every post, most recent first
	List(ctx context.Context) ([]*domain.Post, error)

	// ListByUser returns the posts owned by userID, most recent first
	ListByUser(ctx context.Context, userID string) ([]*domain.Post, error)

	// Prepend stores a new post in front of all others
	Prepend(ctx context.Context, post domain.Post) error

	// ToggleLike flips the liked flag and moves the counter with it
	ToggleLike(ctx context.Context, id string) (*domain.Post, error)

	// AppendComment adds a comment after the existing ones
	AppendComment(ctx context.Context, id string, comment domain.Comment) (*domain.Post, error)
}
