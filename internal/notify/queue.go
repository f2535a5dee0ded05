package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// DefaultDuration is how long a notification stays up unless the caller
// asks otherwise.
const DefaultDuration = 5 * time.Second

type Notification struct {
	ID      int64
	Kind    Kind
	Message string
}

// Queue is the process-wide list of user-facing messages. Ids ascend and
// are never reused; insertion order is preserved for display. A zero
// duration makes a notification sticky until explicitly dismissed.
type Queue struct {
	m      sync.Mutex
	nextID int64
	items  []Notification
	timers map[int64]*time.Timer
}

func NewQueue() *Queue {
	return &Queue{timers: make(map[int64]*time.Timer)}
}

// Post appends a notification and returns its id. duration > 0 schedules
// automatic removal; duration == 0 means sticky.
func (q *Queue) Post(message string, kind Kind, duration time.Duration) int64 {
	q.m.Lock()
	defer q.m.Unlock()

	q.nextID++
	id := q.nextID
	q.items = append(q.items, Notification{ID: id, Kind: kind, Message: message})

	if duration > 0 {
		q.timers[id] = time.AfterFunc(duration, func() {
			q.Dismiss(id)
		})
	}
	return id
}

// Dismiss removes the notification with that id. Dismissing an id that
// is already gone is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.m.Lock()
	defer q.m.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Clear removes everything immediately and cancels pending removals.
func (q *Queue) Clear() {
	q.m.Lock()
	defer q.m.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = nil
}

// Notifications returns the current list in insertion order.
func (q *Queue) Notifications() []Notification {
	q.m.Lock()
	defer q.m.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Success(message string) { q.Post(message, KindSuccess, DefaultDuration) }
func (q *Queue) Error(message string)   { q.Post(message, KindError, DefaultDuration) }
func (q *Queue) Warning(message string) { q.Post(message, KindWarning, DefaultDuration) }
func (q *Queue) Info(message string)    { q.Post(message, KindInfo, DefaultDuration) }
