// Package agenda delivers timed reminders for planned CRM activities.
package agenda

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"echub/internal/model"
)

var ErrInvalidTriggerTime = errors.New("agenda: invalid trigger time")

// Event is a due reminder, delivered over the engine's channel.
type Event struct {
	ID        string
	Subject   string
	RefID     string
	TriggerAt time.Time
}

type queueItem struct {
	event Event
}

type eventQueue []queueItem

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	return q[i].event.TriggerAt.Before(q[j].event.TriggerAt)
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// Engine runs a single timer goroutine over a min-heap of pending events.
// Due events are sent non-blocking; a full channel drops the event and
// bumps the dropped counter rather than stalling the loop.
type Engine struct {
	mu      sync.Mutex
	queue   eventQueue
	out     chan Event
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(eventQueue, 0),
		out:    make(chan Event, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Schedule(ev Event) error {
	if ev.TriggerAt.IsZero() {
		return ErrInvalidTriggerTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("agenda: engine stopped")
	}

	heap.Push(&e.queue, queueItem{event: ev})
	e.signalWakeup()
	return nil
}

// ScheduleActivities queues one reminder per planned activity, at reminderAt
// o'clock local time on the activity's date. Activities already done, on an
// unparsable date, or in the past are skipped; returns how many were queued.
func (e *Engine) ScheduleActivities(acts []model.Activity, reminderAt int, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	queued := 0
	now := time.Now().In(loc)
	for _, a := range acts {
		if a.Status != model.ActivityPlanned {
			continue
		}
		day, err := a.Date.Time(loc)
		if err != nil {
			continue
		}
		trigger := day.Add(time.Duration(reminderAt) * time.Hour)
		if trigger.Before(now) {
			continue
		}
		if err := e.Schedule(Event{
			ID:        "reminder-" + a.ID,
			Subject:   a.Subject,
			RefID:     a.ID,
			TriggerAt: trigger,
		}); err == nil {
			queued++
		}
	}
	return queued
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.TriggerAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, ev := range due {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Event{}, false
	}
	return e.queue[0].event, true
}

func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Event, 0)
	for len(e.queue) > 0 {
		next := e.queue[0].event
		if next.TriggerAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		out = append(out, item.event)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
