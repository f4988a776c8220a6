package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/target/ticketdesk/config"
	"github.com/target/ticketdesk/internal/domain/notification"
)

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock supplies the current time and schedules callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// NotificationOption configures a NotificationQueue.
type NotificationOption func(*NotificationQueue)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) NotificationOption {
	return func(q *NotificationQueue) {
		if c != nil {
			q.clock = c
		}
	}
}

// WithNotificationLogger sets the logger used for pushed messages.
func WithNotificationLogger(l *slog.Logger) NotificationOption {
	return func(q *NotificationQueue) {
		if l != nil {
			q.logger = l
		}
	}
}

// NotificationQueue holds transient notifications. Each entry expires on its
// own timer exactly ttl after it was pushed; entries are never deduplicated.
type NotificationQueue struct {
	ttl    time.Duration
	clock  Clock
	logger *slog.Logger

	mu      sync.Mutex
	entries []notification.Notification
	timers  map[string]Timer
	closed  bool

	obs observers[[]notification.Notification]
}

// NewNotificationQueue builds a queue. A non-positive ttl uses config.DefaultNotificationTTL.
func NewNotificationQueue(ttl time.Duration, opts ...NotificationOption) *NotificationQueue {
	if ttl <= 0 {
		ttl = config.DefaultNotificationTTL
	}
	q := &NotificationQueue{
		ttl:    ttl,
		clock:  systemClock{},
		logger: slog.Default(),
		timers: make(map[string]Timer),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and schedules its removal. An empty kind is
// treated as info. Pushing to a closed queue returns the notification without
// enqueuing it.
func (q *NotificationQueue) Push(message string, kind notification.Kind) notification.Notification {
	if kind == "" {
		kind = notification.KindInfo
	}
	n := notification.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: q.clock.Now(),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return n
	}
	q.entries = append(q.entries, n)
	q.timers[n.ID] = q.clock.AfterFunc(q.ttl, func() { q.expire(n.ID) })
	snap := q.listLocked()
	q.mu.Unlock()

	q.logger.Debug("notification pushed", "id", n.ID, "kind", string(kind), "message", message)
	q.obs.notify(snap)
	return n
}

// List returns the live notifications in the order they were pushed.
func (q *NotificationQueue) List() []notification.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.listLocked()
}

// Subscribe registers fn to receive the list after every push or expiry.
func (q *NotificationQueue) Subscribe(fn func([]notification.Notification)) (unsubscribe func()) {
	return q.obs.add(fn)
}

// Close stops every outstanding timer and drops the queued entries.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.entries = nil
}

func (q *NotificationQueue) expire(id string) {
	q.mu.Lock()
	if _, ok := q.timers[id]; !ok {
		q.mu.Unlock()
		return
	}
	delete(q.timers, id)
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i:i], q.entries[i+1:]...)
			break
		}
	}
	snap := q.listLocked()
	q.mu.Unlock()

	q.obs.notify(snap)
}

func (q *NotificationQueue) listLocked() []notification.Notification {
	out := make([]notification.Notification, len(q.entries))
	copy(out, q.entries)
	return out
}
