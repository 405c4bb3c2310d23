package feedimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/feed"
	mock_presenter "github.com/orgball2608/insta-feed/internal/presenter/mocks"
	mock_ratelimit "github.com/orgball2608/insta-feed/internal/ratelimit/mocks"
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	mock_post "github.com/orgball2608/insta-feed/internal/repositories/post/mocks"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/repositories/user"
	mock_user "github.com/orgball2608/insta-feed/internal/repositories/user/mocks"
	"github.com/orgball2608/insta-feed/internal/seed"
	"github.com/orgball2608/insta-feed/pkg/config"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	feed      *FeedImpl
	clock     *clockwork.FakeClock
	presenter *mock_presenter.MockClient
	opts      seed.Opts
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Feed.CurrentUserID = "1"
	cfg.Feed.ActionRate = 100
	cfg.Feed.ActionPer = time.Second
	cfg.Feed.ActionBurst = 100
	cfg.Composer.MaxCaption = 20
	return cfg
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.NewNop()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	opts := seed.Opts{
		Clock:            clock,
		Logger:           log,
		UserRepo:         user.NewMemory(log),
		PostRepo:         post.NewMemory(log),
		StoryRepo:        story.NewMemory(log),
		ConversationRepo: conversation.NewMemory(log),
	}
	require.NoError(t, seed.Load(context.Background(), opts))

	pres := mock_presenter.NewMockClient(ctrl)
	f := New(Opts{
		PostRepo:         opts.PostRepo,
		StoryRepo:        opts.StoryRepo,
		UserRepo:         opts.UserRepo,
		ConversationRepo: opts.ConversationRepo,
		Presenter:        pres,
		Clock:            clock,
		Logger:           log,
		Config:           testConfig(),
	})
	return &fixture{feed: f, clock: clock, presenter: pres, opts: opts}
}

func image(source string) domain.Media {
	return domain.Media{Kind: domain.MediaImage, Source: source}
}

func TestFeed_ToggleLikeTwiceRestores(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	p, err := f.feed.ToggleLike(ctx, "1")
	req.NoError(err)
	req.True(p.IsLiked)
	req.Equal(125, p.Likes)

	p, err = f.feed.ToggleLike(ctx, "1")
	req.NoError(err)
	req.False(p.IsLiked)
	req.Equal(124, p.Likes)

	_, err = f.feed.ToggleLike(ctx, "404")
	req.True(apperrors.IsNotFound(err))
}

func TestFeed_AddComment(t *testing.T) {
	t.Run("blank text is rejected", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		for _, text := range []string{"", "   ", "\t\n"} {
			_, err := f.feed.AddComment(ctx, "2", text)
			require.True(t, apperrors.IsEmptyInput(err), "text %q", text)
		}

		p, err := f.opts.PostRepo.GetByID(ctx, "2")
		require.NoError(t, err)
		require.Empty(t, p.Comments)
	})

	t.Run("appends trimmed text as current user", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t)

		p, err := f.feed.AddComment(ctx, "1", "  hi  ")

		req.NoError(err)
		req.Len(p.Comments, 2)
		c := p.Comments[1]
		req.Equal("hi", c.Text)
		req.Equal("1", c.UserID)
		req.Equal("myusername", c.Username)
		req.Equal(f.clock.Now(), c.CreatedAt)
		req.NotEmpty(c.ID)
		req.NotEqual(p.Comments[0].ID, c.ID)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := newFixture(t).feed.AddComment(context.Background(), "404", "hi")
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestFeed_AddPost(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	f.presenter.EXPECT().Notify("Post shared successfully!").Times(1)

	p, err := f.feed.AddPost(ctx, feed.NewPost{Media: []domain.Media{image("blob:a")}, Caption: " hello "})
	req.NoError(err)
	req.Equal("hello", p.Caption)
	req.Equal("myusername", p.Username)
	req.Equal(f.clock.Now(), p.CreatedAt)

	posts, err := f.feed.Posts(ctx)
	req.NoError(err)
	req.Len(posts, 3)
	req.Equal(p.ID, posts[0].ID)

	me, mine, err := f.feed.Profile(ctx)
	req.NoError(err)
	req.Equal(43, me.Posts)
	req.Len(mine, 1)
	req.Equal(p.ID, mine[0].ID)
}

func TestFeed_AddPostValidation(t *testing.T) {
	cases := []struct {
		name string
		in   feed.NewPost
	}{
		{name: "no media", in: feed.NewPost{Caption: "x"}},
		{name: "unknown kind", in: feed.NewPost{Media: []domain.Media{{Kind: "audio", Source: "a"}}}},
		{name: "missing source", in: feed.NewPost{Media: []domain.Media{{Kind: domain.MediaVideo}}}},
		{name: "caption too long", in: feed.NewPost{Media: []domain.Media{image("a")}, Caption: strings.Repeat("x", 21)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)

			_, err := f.feed.AddPost(ctx, tc.in)

			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
			require.Equal(t, apperrors.CodeInvalidInput, apperrors.GetCode(err))
			posts, err := f.feed.Posts(ctx)
			require.NoError(t, err)
			require.Len(t, posts, 2)
		})
	}
}

func TestFeed_AddPostStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	repo := mock_post.NewMockRepository(ctrl)
	repo.EXPECT().Prepend(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	f.feed.PostRepo = repo

	_, err := f.feed.AddPost(context.Background(), feed.NewPost{Media: []domain.Media{image("a")}})

	require.ErrorContains(t, err, "disk full")
	me, err := f.opts.UserRepo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, 42, me.Posts)
}

func TestFeed_AddPostKeepsPostWhenCounterFails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	f := newFixture(t)
	users := mock_user.NewMockRepository(ctrl)
	users.EXPECT().GetByID(gomock.Any(), "1").Return(&domain.User{ID: "1", Username: "myusername"}, nil)
	users.EXPECT().IncrementPostCount(gomock.Any(), "1").Return(nil, errors.New("counter unavailable"))
	f.feed.UserRepo = users
	f.presenter.EXPECT().Notify("Post shared successfully!").Times(1)

	p, err := f.feed.AddPost(ctx, feed.NewPost{Media: []domain.Media{image("blob:a")}})

	req.NoError(err)
	posts, err := f.feed.Posts(ctx)
	req.NoError(err)
	req.Len(posts, 3)
	req.Equal(p.ID, posts[0].ID)
}

func TestFeed_AddStoryPrependsUnviewed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	f.presenter.EXPECT().Notify("Story added successfully!").Times(1)

	s, err := f.feed.AddStory(ctx, feed.NewStory{Media: []domain.Media{image("blob:a"), {Kind: domain.MediaVideo, Source: "blob:b"}}})
	req.NoError(err)
	req.False(s.Viewed)
	req.Len(s.Media, 2)

	stories, err := f.feed.Stories(ctx)
	req.NoError(err)
	req.Len(stories, 3)
	req.Equal(s.ID, stories[0].ID)

	_, err = f.feed.AddStory(ctx, feed.NewStory{})
	req.ErrorIs(err, apperrors.ErrInvalidInput)
}

func TestFeed_Search(t *testing.T) {
	cases := []struct {
		query string
		users []string
		posts []string
	}{
		{query: "", users: nil, posts: nil},
		{query: "   ", users: nil, posts: nil},
		{query: "PHOTO", users: []string{"photoartist"}, posts: []string{"1"}},
		{query: "travel", users: []string{"traveler"}, posts: []string{"2"}},
		{query: "sunset", users: nil, posts: []string{"1"}},
		{query: "myuser", users: nil, posts: nil},
		{query: "zzz", users: nil, posts: nil},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)

			res, err := f.feed.Search(context.Background(), tc.query)
			req.NoError(err)

			var users, posts []string
			for _, u := range res.Users {
				users = append(users, u.Username)
			}
			for _, p := range res.Posts {
				posts = append(posts, p.ID)
			}
			req.Equal(tc.users, users)
			req.Equal(tc.posts, posts)
		})
	}
}

func TestFeed_Conversations(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	c, err := f.feed.OpenConversation(ctx, "1")
	req.NoError(err)
	req.False(c.Unread)

	f.clock.Advance(time.Minute)
	c, err = f.feed.SendMessage(ctx, "1", " see you ")
	req.NoError(err)
	req.Len(c.Messages, 3)
	req.Equal("see you", c.LastMessage)
	req.Equal("1", c.Messages[2].SenderID)
	req.Equal(f.clock.Now(), c.UpdatedAt)

	_, err = f.feed.SendMessage(ctx, "1", "  ")
	req.True(apperrors.IsEmptyInput(err))

	_, err = f.feed.OpenConversation(ctx, "9")
	req.True(apperrors.IsNotFound(err))

	list, err := f.feed.Conversations(ctx)
	req.NoError(err)
	req.Len(list, 2)
}

func TestFeed_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	f := newFixture(t)
	limiter := mock_ratelimit.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow("1").Return(false).Times(2)
	f.feed.Limiter = limiter

	_, err := f.feed.ToggleLike(ctx, "1")
	require.True(t, apperrors.IsRateLimited(err))
	_, err = f.feed.AddComment(ctx, "1", "hi")
	require.True(t, apperrors.IsRateLimited(err))

	p, err := f.opts.PostRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, 124, p.Likes)
	require.Len(t, p.Comments, 1)
}
