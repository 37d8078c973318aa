// Package bridge carries calendar quick-add drafts to the tasks screen.
//
// The tasks view registers an edit entry point when it mounts and
// deregisters it on unmount; nothing is shared through ambient globals.
// Because a request can arrive before the target view has mounted, dispatch
// tolerates a short bounded wait and gives up silently when the entry point
// never appears.
package bridge

import (
	"sync"
	"time"

	"echub/internal/model"
)

const (
	defaultWindow   = 2 * time.Second
	defaultInterval = 50 * time.Millisecond
)

type EditEntry func(model.Task)

type Bridge struct {
	mu       sync.Mutex
	entry    EditEntry
	navigate func()
	window   time.Duration
	interval time.Duration
}

// New builds a bridge. navigate switches the UI to the tasks module before
// dispatch; nil is allowed.
func New(navigate func()) *Bridge {
	return &Bridge{
		navigate: navigate,
		window:   defaultWindow,
		interval: defaultInterval,
	}
}

// NewWithWait overrides the bounded-wait window and poll interval.
func NewWithWait(navigate func(), window, interval time.Duration) *Bridge {
	b := New(navigate)
	if window > 0 {
		b.window = window
	}
	if interval > 0 {
		b.interval = interval
	}
	return b
}

// RegisterEditEntry installs the tasks view's entry point. A second
// registration replaces the first.
func (b *Bridge) RegisterEditEntry(fn EditEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry = fn
}

// DeregisterEditEntry removes the entry point, typically on unmount.
func (b *Bridge) DeregisterEditEntry() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry = nil
}

func (b *Bridge) currentEntry() EditEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry
}

// RequestEdit switches to the tasks module and hands the draft to the
// registered entry point. If no entry point is registered yet, it retries on
// the poll interval until the window elapses, then drops the request without
// error: a view that never mounts is a benign race, not a failure.
func (b *Bridge) RequestEdit(task model.Task) {
	if b.navigate != nil {
		b.navigate()
	}
	if entry := b.currentEntry(); entry != nil {
		entry(task)
		return
	}
	go b.dispatchBounded(task)
}

func (b *Bridge) dispatchBounded(task model.Task) {
	deadline := time.Now().Add(b.window)
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for range ticker.C {
		if entry := b.currentEntry(); entry != nil {
			entry(task)
			return
		}
		if time.Now().After(deadline) {
			return
		}
	}
}
