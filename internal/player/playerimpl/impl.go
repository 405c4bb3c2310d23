package playerimpl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/player"
	"github.com/orgball2608/insta-feed/internal/presenter"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/ticker"
	"github.com/orgball2608/insta-feed/pkg/config"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"go.uber.org/fx"
)

const (
	defaultDuration       = 5 * time.Second
	defaultTickInterval   = 50 * time.Millisecond
	defaultSwipeThreshold = 50
)

type Opts struct {
	fx.In

	StoryRepo story.Repository
	Presenter presenter.Client
	Scheduler ticker.Scheduler
	Logger    logger.Logger
	Config    *config.Config
}

type PlayerImpl struct {
	mu sync.Mutex

	StoryRepo story.Repository
	Presenter presenter.Client
	Scheduler ticker.Scheduler
	Logger    logger.Logger

	duration       time.Duration
	tickInterval   time.Duration
	swipeThreshold float64

	session *session
	// generation is bumped every time a timer is cancelled or started; a
	// tick carrying an older value belongs to a dead timer.
	generation uint64
}

// session exists exactly while the viewer is visible.
type session struct {
	story      domain.Story
	index      int
	elapsed    time.Duration
	task       ticker.Task
	generation uint64
}

func New(opts Opts) *PlayerImpl {
	p := &PlayerImpl{
		StoryRepo:      opts.StoryRepo,
		Presenter:      opts.Presenter,
		Scheduler:      opts.Scheduler,
		Logger:         opts.Logger.WithComponent("StoryPlayer"),
		duration:       opts.Config.Player.Duration,
		tickInterval:   opts.Config.Player.TickInterval,
		swipeThreshold: opts.Config.Player.SwipeThreshold,
	}
	if p.duration <= 0 {
		p.duration = defaultDuration
	}
	if p.tickInterval <= 0 {
		p.tickInterval = defaultTickInterval
	}
	if p.swipeThreshold <= 0 {
		p.swipeThreshold = defaultSwipeThreshold
	}
	return p
}

var _ player.Client = (*PlayerImpl)(nil)

func (p *PlayerImpl) Open(ctx context.Context, storyID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.StoryRepo.MarkViewed(ctx, storyID)
	if err != nil {
		if errors.Is(err, story.ErrNotFound) {
			p.Logger.Debug("Ignoring open of unknown story", "story_id", storyID)
			return apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "story "+storyID)
		}
		return fmt.Errorf("failed to open story %s: %w", storyID, err)
	}

	if p.session != nil {
		p.Logger.Debug("Replacing active session", "story_id", p.session.story.ID, "next_story_id", storyID)
		p.cancelTimerLocked()
		p.session = nil
	}

	p.session = &session{story: *s}
	p.Logger.Debug("Story opened", "story_id", storyID, "media", len(s.Media))

	p.Presenter.MarkViewed(storyID)
	p.Presenter.ShowViewer(*s)
	p.showLocked(0)
	return nil
}

func (p *PlayerImpl) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return
	}
	p.nextLocked()
}

func (p *PlayerImpl) Previous() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil || p.session.index == 0 {
		return
	}
	p.cancelTimerLocked()
	p.showLocked(p.session.index - 1)
}

func (p *PlayerImpl) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return
	}
	p.closeLocked()
}

func (p *PlayerImpl) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return
	}
	p.advanceLocked()
}

func (p *PlayerImpl) HandleKey(key string) {
	switch key {
	case player.KeyEscape:
		p.Close()
	case player.KeyArrowLeft:
		p.Previous()
	case player.KeyArrowRight:
		p.Next()
	}
}

// HandleSwipe treats a gesture travelling left (start to the right of end)
// as next and a gesture travelling right as previous. Displacements at or
// below the threshold are taps and do nothing.
func (p *PlayerImpl) HandleSwipe(startX, endX float64) {
	diff := startX - endX
	if math.Abs(diff) <= p.swipeThreshold {
		return
	}
	if diff > 0 {
		p.Next()
	} else {
		p.Previous()
	}
}

func (p *PlayerImpl) Snapshot() player.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return player.Snapshot{State: player.Closed}
	}
	return player.Snapshot{
		State:      player.Playing,
		StoryID:    p.session.story.ID,
		Index:      p.session.index,
		MediaCount: len(p.session.story.Media),
		Progress:   p.progressLocked(),
	}
}

func (p *PlayerImpl) onTick(generation uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil || p.session.generation != generation {
		return
	}
	p.advanceLocked()
}

func (p *PlayerImpl) advanceLocked() {
	p.session.elapsed += p.tickInterval
	p.Presenter.SetProgress(p.session.story.ID, p.progressLocked())

	if p.session.elapsed >= p.duration {
		p.nextLocked()
	}
}

func (p *PlayerImpl) nextLocked() {
	p.cancelTimerLocked()
	if p.session.index+1 < len(p.session.story.Media) {
		p.showLocked(p.session.index + 1)
		return
	}
	p.closeLocked()
}

// showLocked enters Playing(story, index). An index past the end is the
// terminal condition and closes the viewer.
func (p *PlayerImpl) showLocked(index int) {
	if index >= len(p.session.story.Media) {
		p.closeLocked()
		return
	}

	p.session.index = index
	p.session.elapsed = 0
	p.Presenter.ShowMedia(p.session.story, index)
	p.Presenter.SetProgress(p.session.story.ID, 0)
	p.startTimerLocked()
}

func (p *PlayerImpl) closeLocked() {
	p.cancelTimerLocked()
	p.Logger.Debug("Story closed", "story_id", p.session.story.ID, "index", p.session.index)
	p.session = nil
	p.Presenter.HideViewer()
}

func (p *PlayerImpl) startTimerLocked() {
	p.cancelTimerLocked()

	p.generation++
	generation := p.generation
	p.session.generation = generation

	task, err := p.Scheduler.Every(p.tickInterval, func() {
		p.onTick(generation)
	})
	if err != nil {
		p.Logger.Error("Failed to start story timer, auto advance disabled",
			"story_id", p.session.story.ID, "index", p.session.index, "error", err)
		return
	}
	p.session.task = task
}

func (p *PlayerImpl) cancelTimerLocked() {
	p.generation++
	if p.session == nil || p.session.task == nil {
		return
	}
	p.session.task.Cancel()
	p.session.task = nil
}

func (p *PlayerImpl) progressLocked() float64 {
	return math.Min(float64(p.session.elapsed)/float64(p.duration), 1)
}
