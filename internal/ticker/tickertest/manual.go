// Package tickertest provides a ticker.Scheduler driven by hand, for tests
// that need exact control over when ticks happen.
package tickertest

import (
	"errors"
	"sync"
	"time"

	"github.com/orgball2608/insta-feed/internal/ticker"
)

type Manual struct {
	mu    sync.Mutex
	tasks []*ManualTask
	// Err, when set, is returned by Every instead of scheduling.
	Err error
}

var _ ticker.Scheduler = (*Manual)(nil)

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(interval time.Duration, fn func()) (ticker.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if interval <= 0 {
		return nil, errors.New("interval must be positive")
	}

	t := &ManualTask{Interval: interval, fn: fn, m: m}
	m.tasks = append(m.tasks, t)
	return t, nil
}

// Fire runs every task that is active at the time of the call, once.
// A task cancelled by an earlier callback in the same round is skipped.
func (m *Manual) Fire() {
	m.mu.Lock()
	snapshot := append([]*ManualTask(nil), m.tasks...)
	m.mu.Unlock()

	for _, t := range snapshot {
		if t.Cancelled() {
			continue
		}
		t.fn()
	}
}

// FireN calls Fire n times.
func (m *Manual) FireN(n int) {
	for i := 0; i < n; i++ {
		m.Fire()
	}
}

// Active returns the number of scheduled tasks not yet cancelled.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tasks returns every task ever created, oldest first.
func (m *Manual) Tasks() []*ManualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*ManualTask(nil), m.tasks...)
}

// Scheduled returns how many tasks were ever created.
func (m *Manual) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

type ManualTask struct {
	Interval  time.Duration
	fn        func()
	m         *Manual
	cancelled bool
}

func (t *ManualTask) Cancel() {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	t.cancelled = true
}

// Run invokes the callback even if the task was cancelled, the way a tick
// already handed to a worker would still arrive after Cancel.
func (t *ManualTask) Run() {
	t.fn()
}

func (t *ManualTask) Cancelled() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	return t.cancelled
}
