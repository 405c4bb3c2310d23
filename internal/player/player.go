package player

import "context"

type State int

const (
	Closed State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "closed"
}

// Keyboard keys understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Snapshot is a read-only view of the playback session.
type Snapshot struct {
	State      State
	StoryID    string
	Index      int
	MediaCount int
	Progress   float64
}

//go:generate go run go.uber.org/mock/mockgen -source=player.go -destination=mocks/mock.go

// Client is the story viewer. Every method is safe for concurrent use and
// every transition is atomic with respect to scheduled ticks.
type Client interface {
	// Open starts playing the story from its first media item and marks it
	// viewed. An unknown id leaves the viewer untouched and returns a
	// not-found error.
	Open(ctx context.Context, storyID string) error
	Next()
	Previous()
	Close()
	// Tick advances progress by one tick interval, as the timer would.
	Tick()
	HandleKey(key string)
	HandleSwipe(startX, endX float64)
	Snapshot() Snapshot
}
