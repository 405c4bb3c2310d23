package seed

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/repositories/user"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newOpts(clock clockwork.Clock) Opts {
	log := logger.NewNop()
	return Opts{
		Clock:            clock,
		Logger:           log,
		UserRepo:         user.NewMemory(log),
		PostRepo:         post.NewMemory(log),
		StoryRepo:        story.NewMemory(log),
		ConversationRepo: conversation.NewMemory(log),
	}
}

func TestLoad_KeepsDisplayOrder(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	opts := newOpts(clock)

	req.NoError(Load(ctx, opts))

	posts, err := opts.PostRepo.List(ctx)
	req.NoError(err)
	req.Len(posts, 2)
	req.Equal("1", posts[0].ID)
	req.Equal(clock.Now().Add(-2*time.Hour), posts[0].CreatedAt)

	stories, err := opts.StoryRepo.List(ctx)
	req.NoError(err)
	req.Len(stories, 2)
	req.Equal("1", stories[0].ID)
	req.False(stories[0].Viewed)
	req.True(stories[1].Viewed)

	me, err := opts.UserRepo.GetByID(ctx, "1")
	req.NoError(err)
	req.Equal("myusername", me.Username)
	req.Equal(42, me.Posts)

	convs, err := opts.ConversationRepo.List(ctx)
	req.NoError(err)
	req.Len(convs, 2)
	req.True(convs[0].Unread)
	req.Len(convs[0].Messages, 2)
}

func TestLoad_Twice(t *testing.T) {
	ctx := context.Background()
	opts := newOpts(clockwork.NewFakeClock())

	require.NoError(t, Load(ctx, opts))
	require.ErrorIs(t, Load(ctx, opts), user.ErrAlreadyExists)
}
