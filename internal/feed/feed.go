package feed

import (
	"context"

	"github.com/orgball2608/insta-feed/internal/domain"
)

// NewPost is what the create flow hands over when a post is shared.
type NewPost struct {
	Media   []domain.Media `validate:"required,min=1,dive"`
	Caption string
}

// NewStory is what the create flow hands over when a story is shared.
type NewStory struct {
	Media []domain.Media `validate:"required,min=1,dive"`
}

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go

// Client is the feed as seen by the current user. Mutations rejected for
// invalid input, rate limiting or an unknown record leave every collection
// unchanged. A shared post stays stored even if the author's post counter
// cannot be updated afterwards.
type Client interface {
	Posts(ctx context.Context) ([]*domain.Post, error)
	Stories(ctx context.Context) ([]*domain.Story, error)
	Profile(ctx context.Context) (*domain.User, []*domain.Post, error)

	ToggleLike(ctx context.Context, postID string) (*domain.Post, error)
	// AddComment appends the trimmed text as the current user. Blank text
	// is rejected with an empty input error.
	AddComment(ctx context.Context, postID, text string) (*domain.Post, error)
	AddPost(ctx context.Context, in NewPost) (*domain.Post, error)
	AddStory(ctx context.Context, in NewStory) (*domain.Story, error)

	Search(ctx context.Context, query string) (domain.SearchResult, error)

	Conversations(ctx context.Context) ([]*domain.Conversation, error)
	OpenConversation(ctx context.Context, id string) (*domain.Conversation, error)
	SendMessage(ctx context.Context, id, text string) (*domain.Conversation, error)
}
