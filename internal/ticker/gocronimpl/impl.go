package gocronimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/ticker"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Clock  clockwork.Clock
	Logger logger.Logger
}

type GocronImpl struct {
	Scheduler gocron.Scheduler
	Logger    logger.Logger
}

var _ ticker.Scheduler = (*GocronImpl)(nil)

// New builds the scheduler and ties it to the fx lifecycle.
func New(opts Opts) (*GocronImpl, error) {
	impl, err := NewScheduler(opts.Clock, opts.Logger)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			impl.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			return impl.Shutdown()
		},
	})

	return impl, nil
}

func NewScheduler(clock clockwork.Clock, log logger.Logger) (*GocronImpl, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker scheduler: %w", err)
	}

	return &GocronImpl{
		Scheduler: scheduler,
		Logger:    log.WithComponent("Ticker"),
	}, nil
}

func (g *GocronImpl) Start() {
	g.Logger.Info("Starting ticker scheduler")
	g.Scheduler.Start()
}

func (g *GocronImpl) Shutdown() error {
	g.Logger.Info("Stopping ticker scheduler")
	if err := g.Scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down ticker scheduler: %w", err)
	}
	return nil
}

func (g *GocronImpl) Every(interval time.Duration, fn func()) (ticker.Task, error) {
	job, err := g.Scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule tick every %s: %w", interval, err)
	}

	return &task{
		scheduler: g.Scheduler,
		id:        job.ID(),
		logger:    g.Logger,
	}, nil
}

type task struct {
	once      sync.Once
	scheduler gocron.Scheduler
	id        uuid.UUID
	logger    logger.Logger
}

func (t *task) Cancel() {
	t.once.Do(func() {
		err := t.scheduler.RemoveJob(t.id)
		if err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
			t.logger.Warn("Failed to remove tick job", "job_id", t.id, "error", err)
		}
	})
}
