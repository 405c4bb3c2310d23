package commandimpl

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/insta-feed/internal/composer"
	mock_composer "github.com/orgball2608/insta-feed/internal/composer/mocks"
	"github.com/orgball2608/insta-feed/internal/domain"
	mock_feed "github.com/orgball2608/insta-feed/internal/feed/mocks"
	"github.com/orgball2608/insta-feed/internal/player"
	mock_player "github.com/orgball2608/insta-feed/internal/player/mocks"
	mock_presenter "github.com/orgball2608/insta-feed/internal/presenter/mocks"
	"github.com/orgball2608/insta-feed/pkg/config"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	player    *mock_player.MockClient
	feed      *mock_feed.MockClient
	composer  *mock_composer.MockClient
	presenter *mock_presenter.MockClient
}

func newCommand(t *testing.T, input io.Reader) (*CommandImpl, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		player:    mock_player.NewMockClient(ctrl),
		feed:      mock_feed.NewMockClient(ctrl),
		composer:  mock_composer.NewMockClient(ctrl),
		presenter: mock_presenter.NewMockClient(ctrl),
	}
	c := New(Opts{
		Player:    m.player,
		Feed:      m.feed,
		Composer:  m.composer,
		Presenter: m.presenter,
		Logger:    logger.NewNop(),
		Config:    &config.Config{},
		Input:     input,
	})
	return c, m
}

func run(t *testing.T, c *CommandImpl) {
	t.Helper()
	require.NoError(t, c.HandleCommand(context.Background()))
}

func TestHandleCommand_StoryNavigation(t *testing.T) {
	c, m := newCommand(t, strings.NewReader("open 1\nnext\nprev\n\nkey ArrowRight\nswipe 300 200\ntick\nclose\n"))

	gomock.InOrder(
		m.player.EXPECT().Open(gomock.Any(), "1").Return(nil),
		m.player.EXPECT().Next(),
		m.player.EXPECT().Previous(),
		m.player.EXPECT().HandleKey(player.KeyArrowRight),
		m.player.EXPECT().HandleSwipe(300.0, 200.0),
		m.player.EXPECT().Tick(),
		m.player.EXPECT().Close(),
	)

	run(t, c)
}

func TestHandleCommand_OpenUnknownStoryIsSilent(t *testing.T) {
	c, m := newCommand(t, strings.NewReader("open 9\nopen 1\n"))

	// no presenter expectations: any output fails the test
	gomock.InOrder(
		m.player.EXPECT().Open(gomock.Any(), "9").
			Return(apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "story 9")),
		m.player.EXPECT().Open(gomock.Any(), "1").Return(nil),
	)

	run(t, c)
}

func TestHandleCommand_OtherNotFoundIsReported(t *testing.T) {
	c, m := newCommand(t, strings.NewReader("chat 9\n"))

	m.feed.EXPECT().OpenConversation(gomock.Any(), "9").
		Return(nil, apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "conversation 9"))
	m.presenter.EXPECT().Notify("conversation 9 not found.")

	run(t, c)
}

func TestHandleCommand_Usage(t *testing.T) {
	cases := []struct {
		line string
		hint string
	}{
		{line: "open", hint: "Usage: open <storyID>"},
		{line: "swipe 10", hint: "Usage: swipe <startX> <endX>"},
		{line: "swipe left right", hint: "Usage: swipe <startX> <endX>"},
		{line: "like", hint: "Usage: like <postID>"},
		{line: "create reel", hint: "Usage: create <post|story>"},
		{line: "bogus", hint: "Unknown command. Type help to see the list of available commands."},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			c, m := newCommand(t, strings.NewReader(tc.line+"\n"))
			m.presenter.EXPECT().Notify(tc.hint)
			run(t, c)
		})
	}
}

func TestHandleCommand_RecoversFromPanic(t *testing.T) {
	c, m := newCommand(t, strings.NewReader("next\nclose\n"))

	m.player.EXPECT().Next().Do(func() { panic("boom") })
	m.player.EXPECT().Close()

	run(t, c)
}

func TestHandleCommand_Feed(t *testing.T) {
	posts := []*domain.Post{{ID: "1"}}
	c, m := newCommand(t, strings.NewReader("feed\nlike 1\ncomment 1  \nsearch Photo\n"))

	gomock.InOrder(
		m.feed.EXPECT().Posts(gomock.Any()).Return(posts, nil),
		m.presenter.EXPECT().RenderFeed(posts),
		m.feed.EXPECT().ToggleLike(gomock.Any(), "1").Return(&domain.Post{ID: "1", Likes: 1205, IsLiked: true}, nil),
		m.presenter.EXPECT().Notify("Liked post 1 · 1,205 likes"),
		m.feed.EXPECT().AddComment(gomock.Any(), "1", "").
			Return(nil, apperrors.WrapWithCode(apperrors.ErrEmptyInput, apperrors.CodeEmptyInput, "comment")),
		m.presenter.EXPECT().Notify("Please enter some text."),
		m.feed.EXPECT().Search(gomock.Any(), "Photo").Return(domain.SearchResult{}, nil),
		m.presenter.EXPECT().RenderSearch("Photo", domain.SearchResult{}),
	)

	run(t, c)
}

func TestHandleCommand_Messages(t *testing.T) {
	conv := &domain.Conversation{ID: "1"}
	c, m := newCommand(t, strings.NewReader("inbox\nchat 1\nsend 1 hello there\n"))

	gomock.InOrder(
		m.feed.EXPECT().Conversations(gomock.Any()).Return([]*domain.Conversation{conv}, nil),
		m.presenter.EXPECT().RenderInbox([]*domain.Conversation{conv}),
		m.feed.EXPECT().OpenConversation(gomock.Any(), "1").Return(conv, nil),
		m.presenter.EXPECT().RenderConversation(conv),
		m.feed.EXPECT().SendMessage(gomock.Any(), "1", "hello there").Return(conv, nil),
		m.presenter.EXPECT().RenderConversation(conv),
	)

	run(t, c)
}

func TestHandleCommand_UnexpectedErrorIsReported(t *testing.T) {
	c, m := newCommand(t, strings.NewReader("profile\n"))

	m.feed.EXPECT().Profile(gomock.Any()).Return(nil, nil, errors.New("store unavailable"))
	m.presenter.EXPECT().Notify("Something went wrong. Please try again.")

	run(t, c)
}

func TestHandleCommand_CreateFlow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))
	selected := []domain.Media{{Kind: domain.MediaImage, Source: "blob:1"}}

	c, m := newCommand(t, strings.NewReader("create post\nupload "+path+"\nshare hello world\n"))

	gomock.InOrder(
		m.composer.EXPECT().Open(composer.KindPost),
		m.composer.EXPECT().Choose(composer.KindPost),
		m.composer.EXPECT().Title().Return("Select photos and videos"),
		m.presenter.EXPECT().Notify("Select photos and videos"),

		m.composer.EXPECT().State().Return(composer.State{Active: true, Kind: composer.KindPost, Step: composer.StepUpload}),
		m.composer.EXPECT().SelectFiles(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, uploads []composer.Upload) error {
				require.Len(t, uploads, 1)
				require.Equal(t, "sunset.png", uploads[0].Name)
				return nil
			}),
		m.composer.EXPECT().State().Return(composer.State{Active: true, Kind: composer.KindPost, Step: composer.StepDetails, Media: selected}),
		m.composer.EXPECT().Title().Return("Create new post"),
		m.presenter.EXPECT().Notify("Create new post (1 selected)"),

		m.composer.EXPECT().State().Return(composer.State{Active: true, Kind: composer.KindPost, Step: composer.StepDetails, Media: selected}),
		m.composer.EXPECT().Share(gomock.Any(), "hello world").Return(nil),
		m.feed.EXPECT().Posts(gomock.Any()).Return(nil, nil),
		m.presenter.EXPECT().RenderFeed(gomock.Nil()),
	)

	run(t, c)
}

func TestHandleCommand_UploadUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	c, m := newCommand(t, strings.NewReader("upload "+path+"\n"))

	m.composer.EXPECT().State().Return(composer.State{Active: true, Step: composer.StepUpload})
	m.composer.EXPECT().SelectFiles(gomock.Any(), gomock.Any()).
		Return(apperrors.WrapWithCode(apperrors.ErrUnsupportedMedia, apperrors.CodeUnsupportedMedia, "notes.txt is text/plain"))
	m.presenter.EXPECT().Notify("Only photos and videos can be shared: notes.txt is text/plain")

	run(t, c)
}

func TestHandleCommand_StopsOnContextCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c, _ := newCommand(t, r)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.HandleCommand(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("HandleCommand did not return after cancel")
	}
}
