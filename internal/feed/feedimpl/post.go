package feedimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/feed"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

func postNotFound(id string) error {
	return apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "post "+id)
}

func (f *FeedImpl) ToggleLike(ctx context.Context, postID string) (*domain.Post, error) {
	if err := f.allow("toggle_like"); err != nil {
		return nil, err
	}

	p, err := f.PostRepo.ToggleLike(ctx, postID)
	if err != nil {
		if apperrors.Is(err, post.ErrNotFound) {
			return nil, postNotFound(postID)
		}
		return nil, fmt.Errorf("failed to toggle like on %s: %w", postID, err)
	}

	f.Logger.Debug("Like toggled", "post_id", postID, "liked", p.IsLiked, "likes", p.Likes)
	return p, nil
}

func (f *FeedImpl) AddComment(ctx context.Context, postID, text string) (*domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.WrapWithCode(apperrors.ErrEmptyInput, apperrors.CodeEmptyInput, "comment")
	}
	if err := f.allow("add_comment"); err != nil {
		return nil, err
	}

	u, err := f.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	p, err := f.PostRepo.AppendComment(ctx, postID, domain.Comment{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Text:      text,
		CreatedAt: f.Clock.Now(),
	})
	if err != nil {
		if apperrors.Is(err, post.ErrNotFound) {
			return nil, postNotFound(postID)
		}
		return nil, fmt.Errorf("failed to comment on %s: %w", postID, err)
	}
	return p, nil
}

func (f *FeedImpl) AddPost(ctx context.Context, in feed.NewPost) (*domain.Post, error) {
	if err := f.validate.Struct(in); err != nil {
		return nil, apperrors.WrapWithCode(apperrors.ErrInvalidInput, apperrors.CodeInvalidInput, err.Error())
	}
	caption := strings.TrimSpace(in.Caption)
	if f.maxCaption > 0 {
		if err := f.validate.Var(caption, fmt.Sprintf("max=%d", f.maxCaption)); err != nil {
			return nil, apperrors.WrapWithCode(apperrors.ErrInvalidInput, apperrors.CodeInvalidInput,
				fmt.Sprintf("caption longer than %d characters", f.maxCaption))
		}
	}
	if err := f.allow("add_post"); err != nil {
		return nil, err
	}

	u, err := f.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	p := domain.Post{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		Avatar:    u.Avatar,
		Media:     in.Media,
		Caption:   caption,
		CreatedAt: f.Clock.Now(),
	}
	if err := f.PostRepo.Prepend(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to store post: %w", err)
	}
	if _, err := f.UserRepo.IncrementPostCount(ctx, u.ID); err != nil {
		f.Logger.Error("Failed to update post count", "user_id", u.ID, "error", err)
	}

	f.Logger.Info("Post shared", "post_id", p.ID, "media", len(p.Media))
	f.Presenter.Notify("Post shared successfully!")

	out := p.Clone()
	return &out, nil
}
