package story

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/stretchr/testify/require"
)

func newStory(id string) domain.Story {
	return domain.Story{
		ID:        id,
		UserID:    "2",
		Username:  "photoartist",
		Media:     []domain.Media{{Kind: domain.MediaImage, Source: "a.jpg"}},
		CreatedAt: time.Now(),
	}
}

func TestMemory_PrependKeepsMostRecentFirst(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemory(logger.NewNop())

	req.NoError(repo.Prepend(ctx, newStory("1")))
	req.NoError(repo.Prepend(ctx, newStory("2")))

	list, err := repo.List(ctx)
	req.NoError(err)
	req.Len(list, 2)
	req.Equal("2", list[0].ID)
	req.Equal("1", list[1].ID)
}

func TestMemory_PrependRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(logger.NewNop())

	require.NoError(t, repo.Prepend(ctx, newStory("1")))
	require.ErrorIs(t, repo.Prepend(ctx, newStory("1")), ErrAlreadyExists)
}

func TestMemory_MarkViewedIsIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemory(logger.NewNop())
	req.NoError(repo.Prepend(ctx, newStory("1")))

	first, err := repo.MarkViewed(ctx, "1")
	req.NoError(err)
	req.True(first.Viewed)

	second, err := repo.MarkViewed(ctx, "1")
	req.NoError(err)
	req.True(second.Viewed)

	got, err := repo.GetByID(ctx, "1")
	req.NoError(err)
	req.True(got.Viewed)
}

func TestMemory_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(logger.NewNop())

	_, err := repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.MarkViewed(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemory(logger.NewNop())
	req.NoError(repo.Prepend(ctx, newStory("1")))

	got, err := repo.GetByID(ctx, "1")
	req.NoError(err)
	got.Media[0].Source = "changed.jpg"
	got.Viewed = true

	again, err := repo.GetByID(ctx, "1")
	req.NoError(err)
	req.Equal("a.jpg", again.Media[0].Source)
	req.False(again.Viewed)
}
