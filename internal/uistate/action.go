// Package uistate carries the two pieces of cross-screen UI state: the
// primary-action broadcaster behind the global header button and the toast
// queue. Both are plain values handed to the screens that need them, not
// ambient globals.
package uistate

import "sync"

type registration struct {
	id int
	fn func()
}

// Actions connects the active screen to the shared "add new thing" trigger.
// Registrations stack: Trigger invokes the most recent live one, and each
// release removes only its own entry, so a screen tearing down restores
// whatever was registered beneath it.
type Actions struct {
	mu     sync.Mutex
	nextID int
	stack  []registration
}

func NewActions() *Actions {
	return &Actions{}
}

// Register installs fn as the current primary action and returns a release
// func the screen must call when it goes away. Releasing twice is harmless.
func (a *Actions) Register(fn func()) (release func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	id := a.nextID
	a.stack = append(a.stack, registration{id: id, fn: fn})

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		for i := range a.stack {
			if a.stack[i].id == id {
				a.stack = append(a.stack[:i], a.stack[i+1:]...)
				return
			}
		}
	}
}

// Trigger invokes the current primary action, or does nothing when no
// screen has one registered.
func (a *Actions) Trigger() {
	a.mu.Lock()
	var fn func()
	if n := len(a.stack); n > 0 {
		fn = a.stack[n-1].fn
	}
	a.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// HasAction reports whether a primary action is currently registered.
func (a *Actions) HasAction() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.stack) > 0
}
