package aggregation

import (
	"sync"
)

// ScopeLocker serializes recomputations of the same (user, scope) key.
// Two concurrent rebuilds of one scope could interleave their delete and
// insert phases and leave stale or duplicate rollup rows behind; different
// scopes carry no shared state and may run in parallel.
type ScopeLocker struct {
	mu     sync.Mutex
	scopes map[string]*scopeLock
}

type scopeLock struct {
	mu   sync.Mutex
	refs int
}

func NewScopeLocker() *ScopeLocker {
	return &ScopeLocker{
		scopes: make(map[string]*scopeLock),
	}
}

// Lock blocks until the scope key is exclusively held and returns the
// corresponding unlock func. Locks are refcounted so the internal map does
// not grow with every scope ever touched.
func (l *ScopeLocker) Lock(key string) func() {
	l.mu.Lock()
	sl, ok := l.scopes[key]
	if !ok {
		sl = &scopeLock{}
		l.scopes[key] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.mu.Lock()

	return func() {
		sl.mu.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.scopes, key)
		}
		l.mu.Unlock()
	}
}
