package ticker

import "time"

// Task is a repeating scheduled callback. Cancel is safe to call more than
// once and from inside the callback itself.
type Task interface {
	Cancel()
}

type Scheduler interface {
	// Every runs fn every interval until the returned task is cancelled.
	// The first run happens one interval after scheduling.
	Every(interval time.Duration, fn func()) (Task, error)
}
