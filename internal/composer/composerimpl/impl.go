package composerimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/insta-feed/internal/composer"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/feed"
	"github.com/orgball2608/insta-feed/pkg/config"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

const defaultWorkers = 4

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Feed   feed.Client
	Logger logger.Logger
	Config *config.Config
}

type ComposerImpl struct {
	mu sync.Mutex

	Feed   feed.Client
	Logger logger.Logger
	pool   *ants.Pool

	state composer.State
}

func New(opts Opts) (*ComposerImpl, error) {
	c, err := NewComposer(opts.Feed, opts.Logger, opts.Config.Composer.Workers)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(context.Context) error {
			c.Release()
			return nil
		},
	})
	return c, nil
}

func NewComposer(feedClient feed.Client, log logger.Logger, workers int) (*ComposerImpl, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create composer worker pool: %w", err)
	}

	return &ComposerImpl{
		Feed:   feedClient,
		Logger: log.WithComponent("Composer"),
		pool:   pool,
		state:  composer.State{Kind: composer.KindPost},
	}, nil
}

var _ composer.Client = (*ComposerImpl)(nil)

// Release stops the worker pool.
func (c *ComposerImpl) Release() {
	c.pool.Release()
}

func (c *ComposerImpl) Open(kind composer.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = composer.State{Active: true, Kind: normalizeKind(kind), Step: composer.StepSelect}
}

func (c *ComposerImpl) Choose(kind composer.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active {
		return
	}
	c.state.Kind = normalizeKind(kind)
	c.state.Step = composer.StepUpload
}

func (c *ComposerImpl) SelectFiles(ctx context.Context, uploads []composer.Upload) error {
	if len(uploads) == 0 {
		return nil
	}

	c.mu.Lock()
	active := c.state.Active
	c.mu.Unlock()
	if !active {
		return nil
	}

	media, err := c.classify(ctx, uploads)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Active {
		return nil
	}
	c.state.Media = media
	c.state.Step = composer.StepDetails
	c.Logger.Debug("Files selected", "kind", c.state.Kind, "count", len(media))
	return nil
}

func (c *ComposerImpl) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active {
		return
	}
	c.state.Step = composer.StepUpload
}

func (c *ComposerImpl) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	story := c.state.Kind == composer.KindStory
	switch c.state.Step {
	case composer.StepUpload:
		if story {
			return "Add to your story"
		}
		return "Select photos and videos"
	case composer.StepDetails:
		if story {
			return "Share to story"
		}
		return "Create new post"
	default:
		return "Create new post"
	}
}

func (c *ComposerImpl) Share(ctx context.Context, caption string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active || len(c.state.Media) == 0 {
		return apperrors.Wrap(apperrors.ErrNothingSelected, "share")
	}

	var err error
	switch c.state.Kind {
	case composer.KindStory:
		_, err = c.Feed.AddStory(ctx, feed.NewStory{Media: c.state.Media})
	default:
		_, err = c.Feed.AddPost(ctx, feed.NewPost{Media: c.state.Media, Caption: caption})
	}
	if err != nil {
		return fmt.Errorf("failed to share %s: %w", c.state.Kind, err)
	}

	c.resetLocked()
	return nil
}

func (c *ComposerImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *ComposerImpl) State() composer.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Media = append([]domain.Media(nil), s.Media...)
	return s
}

func (c *ComposerImpl) resetLocked() {
	c.state = composer.State{Kind: composer.KindPost}
}

func normalizeKind(kind composer.Kind) composer.Kind {
	if kind == composer.KindStory {
		return composer.KindStory
	}
	return composer.KindPost
}
