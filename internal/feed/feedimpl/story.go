package feedimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/feed"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

func (f *FeedImpl) AddStory(ctx context.Context, in feed.NewStory) (*domain.Story, error) {
	if err := f.validate.Struct(in); err != nil {
		return nil, apperrors.WrapWithCode(apperrors.ErrInvalidInput, apperrors.CodeInvalidInput, err.Error())
	}
	if err := f.allow("add_story"); err != nil {
		return nil, err
	}

	u, err := f.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s := domain.Story{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Avatar:    u.Avatar,
		Media:     in.Media,
		CreatedAt: f.Clock.Now(),
	}
	if err := f.StoryRepo.Prepend(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to store story: %w", err)
	}

	f.Logger.Info("Story added", "story_id", s.ID, "media", len(s.Media))
	f.Presenter.Notify("Story added successfully!")

	out := s.Clone()
	return &out, nil
}
