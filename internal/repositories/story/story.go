package story

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-feed/internal/domain"
)

var ErrNotFound = errors.New("story not found")
var ErrAlreadyExists = errors.New("story already exists")

//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=mocks/mock.go

// Repository keeps stories most recent first. The player only ever touches
// the viewed flag; creation goes through Prepend.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	List(ctx context.Context) ([]*domain.Story, error)
	Prepend(ctx context.Context, story domain.Story) error
	MarkViewed(ctx context.Context, id string) (*domain.Story, error)
}
