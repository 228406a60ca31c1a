// Package keylock serializes mutating operations per action id: every state
// transition, contribution, fulfillment or cancellation for one action runs
// under that action's lock, so at most one is in flight at a time.
package keylock

import "sync"

type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Do runs fn while holding the lock for key. Entries are reference counted
// and dropped once idle, so the map does not grow with dead action ids.
func (l *KeyLock) Do(key string, fn func() error) error {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	err := fn()
	e.mu.Unlock()

	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
	return err
}
