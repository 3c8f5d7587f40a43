// Package notify keeps the queue of transient toast notifications shown by a
// front end. A Queue is created by the application and passed to whatever
// needs to raise toasts; there is no package-level queue.
package notify

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultDuration is how long a toast stays open when Toast.Duration is zero.
const DefaultDuration = 3 * time.Second

// ExitDelay is how long a dismissed toast stays in the queue, closed, so the
// front end can animate it out.
const ExitDelay = 200 * time.Millisecond

// Variant styles a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast is a single notification.
type Toast struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Variant     Variant       `json:"variant"`
	Duration    time.Duration `json:"duration"` // zero means DefaultDuration, negative stays until dismissed
	Open        bool          `json:"open"`
}

// Queue holds the active toasts. It is safe for concurrent use.
type Queue struct {
	exitDelay time.Duration

	mu       sync.Mutex
	toasts   []Toast
	timers   map[string]*time.Timer
	onChange func([]Toast)
	closed   bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithExitDelay overrides ExitDelay.
func WithExitDelay(d time.Duration) Option {
	return func(q *Queue) { q.exitDelay = d }
}

// OnChange registers fn to receive a snapshot after every change.
func OnChange(fn func([]Toast)) Option {
	return func(q *Queue) { q.onChange = fn }
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		exitDelay: ExitDelay,
		timers:    make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Push adds t and schedules its dismissal. It returns the assigned id.
func (q *Queue) Push(t Toast) string {
	t.ID = newID()
	t.Open = true
	if t.Variant == "" {
		t.Variant = VariantDefault
	}
	if t.Duration == 0 {
		t.Duration = DefaultDuration
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}
	q.toasts = append(q.toasts, t)
	if t.Duration > 0 {
		id := t.ID
		q.timers[id] = time.AfterFunc(t.Duration, func() { q.Dismiss(id) })
	}
	q.mu.Unlock()

	q.changed()
	return t.ID
}

// Dismiss closes the toast and removes it after the exit delay. Unknown or
// already dismissed ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	i := q.index(id)
	if q.closed || i < 0 || !q.toasts[i].Open {
		q.mu.Unlock()
		return
	}
	q.toasts[i].Open = false
	if tm, ok := q.timers[id]; ok {
		tm.Stop()
	}
	q.timers[id] = time.AfterFunc(q.exitDelay, func() { q.remove(id) })
	q.mu.Unlock()

	q.changed()
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	i := q.index(id)
	if q.closed || i < 0 {
		q.mu.Unlock()
		return
	}
	q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
	delete(q.timers, id)
	q.mu.Unlock()

	q.changed()
}

func (q *Queue) index(id string) int {
	for i, t := range q.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Toasts returns a snapshot of the queue, oldest first.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast{}, q.toasts...)
}

// Close stops every pending timer and empties the queue.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, tm := range q.timers {
		tm.Stop()
	}
	q.timers = map[string]*time.Timer{}
	q.toasts = nil
	q.closed = true
}

func (q *Queue) changed() {
	if q.onChange != nil {
		q.onChange(q.Toasts())
	}
}
