package feedimpl

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/feed"
	"github.com/orgball2608/insta-feed/internal/presenter"
	"github.com/orgball2608/insta-feed/internal/ratelimit"
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/repositories/user"
	"github.com/orgball2608/insta-feed/pkg/config"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	PostRepo         post.Repository
	StoryRepo        story.Repository
	UserRepo         user.Repository
	ConversationRepo conversation.Repository
	Presenter        presenter.Client
	Limiter          ratelimit.Limiter `optional:"true"`
	Clock            clockwork.Clock
	Logger           logger.Logger
	Config           *config.Config
}

type FeedImpl struct {
	PostRepo         post.Repository
	StoryRepo        story.Repository
	UserRepo         user.Repository
	ConversationRepo conversation.Repository
	Presenter        presenter.Client
	Limiter          ratelimit.Limiter
	Clock            clockwork.Clock
	Logger           logger.Logger

	currentUserID string
	maxCaption    int
	validate      *validator.Validate
}

func New(opts Opts) *FeedImpl {
	limiter := opts.Limiter
	if limiter == nil {
		limiter = ratelimit.NewInMemoryLimiter(opts.Clock,
			opts.Config.Feed.ActionRate, opts.Config.Feed.ActionPer, opts.Config.Feed.ActionBurst)
	}

	return &FeedImpl{
		PostRepo:         opts.PostRepo,
		StoryRepo:        opts.StoryRepo,
		UserRepo:         opts.UserRepo,
		ConversationRepo: opts.ConversationRepo,
		Presenter:        opts.Presenter,
		Limiter:          limiter,
		Clock:            opts.Clock,
		Logger:           opts.Logger.WithComponent("Feed"),
		currentUserID:    opts.Config.Feed.CurrentUserID,
		maxCaption:       opts.Config.Composer.MaxCaption,
		validate:         validator.New(validator.WithRequiredStructEnabled()),
	}
}

var _ feed.Client = (*FeedImpl)(nil)

func (f *FeedImpl) Posts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := f.PostRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (f *FeedImpl) Stories(ctx context.Context) ([]*domain.Story, error) {
	stories, err := f.StoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

func (f *FeedImpl) Profile(ctx context.Context) (*domain.User, []*domain.Post, error) {
	u, err := f.currentUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	posts, err := f.PostRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list posts of %s: %w", u.ID, err)
	}
	return u, posts, nil
}

func (f *FeedImpl) currentUser(ctx context.Context) (*domain.User, error) {
	u, err := f.UserRepo.GetByID(ctx, f.currentUserID)
	if err != nil {
		if apperrors.Is(err, user.ErrNotFound) {
			return nil, apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "current user "+f.currentUserID)
		}
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return u, nil
}

// allow consumes one action token of the current user.
func (f *FeedImpl) allow(action string) error {
	if f.Limiter.Allow(f.currentUserID) {
		return nil
	}
	f.Logger.Warn("Feed action rate limited", "action", action, "user_id", f.currentUserID)
	return apperrors.WrapWithCode(apperrors.ErrRateLimited, apperrors.CodeRateLimited, action)
}
