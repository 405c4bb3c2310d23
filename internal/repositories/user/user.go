package user

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-feed/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("user already exists")
	ErrNotFound      = errors.New("user not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=mocks/mock.go
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Add(ctx context.Context, user domain.User) error
	// IncrementPostCount bumps the posts counter shown on the profile
	IncrementPostCount(ctx context.Context, id string) (*domain.User, error)
}
