package conversation

import (
	"context"
	"errors"

	"github.com/orgball2608/insta-feed/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("conversation already exists")
	ErrNotFound      = errors.New("conversation not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=mocks/mock.go
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context) ([]*domain.Conversation, error)
	Add(ctx context.Context, conversation domain.Conversation) error
	MarkRead(ctx context.Context, id string) (*domain.Conversation, error)

	// AppendMessage adds msg to the thread and makes it the preview
	AppendMessage(ctx context.Context, id string, msg domain.DirectMessage) (*domain.Conversation, error)
}
