package store

import (
	"sync"
	"time"
)

// Level classifies a toast message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is an ephemeral notification value.
type Toast struct {
	Message string `json:"message"`
	Level   Level  `json:"type"`
}

// DefaultClearDelay is how long a toast stays visible unless superseded.
const DefaultClearDelay = 3 * time.Second

type toastSub struct {
	id int
	fn func(t *Toast)
}

// ToastQueue holds at most one pending notification. Show replaces the
// current toast immediately and schedules an auto-clear; showing again
// before the clear fires invalidates the earlier timer, so a stale clear
// can never erase a newer toast.
type ToastQueue struct {
	mu      sync.Mutex
	delay   time.Duration
	current *Toast
	timer   *time.Timer
	gen     uint64
	subs    []toastSub
	subSeq  int
}

type ToastOption func(q *ToastQueue)

// WithClearDelay overrides the auto-clear delay, mainly for tests.
func WithClearDelay(d time.Duration) ToastOption {
	return func(q *ToastQueue) {
		q.delay = d
	}
}

func NewToastQueue(opts ...ToastOption) *ToastQueue {
	q := &ToastQueue{delay: DefaultClearDelay}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Show replaces any current toast with message at the given level (empty
// level means info) and schedules the clear.
func (q *ToastQueue) Show(message string, level Level) {
	if level == "" {
		level = LevelInfo
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.timer != nil {
		q.timer.Stop()
	}
	q.gen++
	gen := q.gen
	q.current = &Toast{Message: message, Level: level}
	q.timer = time.AfterFunc(q.delay, func() {
		q.clear(gen)
	})
	q.notifyLocked()
}

// clear empties the queue unless a newer Show superseded gen. Stop does not
// guarantee the timer callback never runs, so the generation check is the
// actual guard.
func (q *ToastQueue) clear(gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.gen {
		return
	}
	q.current = nil
	q.timer = nil
	q.notifyLocked()
}

// Current returns a copy of the pending toast, or nil when the queue is
// empty.
func (q *ToastQueue) Current() *Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return nil
	}
	t := *q.current
	return &t
}

// Subscribe registers fn, calls it immediately with the current value, and
// returns a cancel func.
func (q *ToastQueue) Subscribe(fn func(t *Toast)) (cancel func()) {
	q.mu.Lock()
	q.subSeq++
	id := q.subSeq
	q.subs = append(q.subs, toastSub{id: id, fn: fn})
	fn(q.currentLocked())
	q.mu.Unlock()
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i := range q.subs {
			if q.subs[i].id == id {
				q.subs = append(q.subs[:i], q.subs[i+1:]...)
				return
			}
		}
	}
}

func (q *ToastQueue) currentLocked() *Toast {
	if q.current == nil {
		return nil
	}
	t := *q.current
	return &t
}

func (q *ToastQueue) notifyLocked() {
	for _, sub := range q.subs {
		sub.fn(q.currentLocked())
	}
}
