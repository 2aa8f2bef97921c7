// Package cow provides a copy-on-write list. Readers get an immutable
// point-in-time snapshot without locking; writers are serialized and publish a
// freshly built slice with a single atomic store.
package cow

import (
	"sync"
	"sync/atomic"
)

// List is safe for concurrent use. The zero value is an empty list.
type List[T any] struct {
	mu   sync.Mutex
	data atomic.Pointer[[]T]
}

func New[T any](items ...T) *List[T] {
	var l List[T]

	if len(items) != 0 {
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		l.data.Store(&snapshot)
	}

	return &l
}

// Load returns the current snapshot. The returned slice is shared with other
// readers and must not be modified.
func (l *List[T]) Load() []T {
	p := l.data.Load()
	if p == nil {
		return nil
	}

	return *p
}

func (l *List[T]) Len() int {
	return len(l.Load())
}

// Update runs fn under the writer lock with the current snapshot. If fn
// reports ok, its result is published as the new contents. fn must return a
// new slice rather than modify cur.
func (l *List[T]) Update(fn func(cur []T) (next []T, ok bool)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, ok := fn(l.Load())
	if !ok {
		return false
	}

	l.data.Store(&next)

	return true
}

func (l *List[T]) Append(items ...T) {
	l.Update(func(cur []T) ([]T, bool) {
		return AppendCopy(cur, items...), true
	})
}

// RemoveFunc drops every element for which del returns true and reports how
// many were removed.
func (l *List[T]) RemoveFunc(del func(T) bool) int {
	removed := 0

	l.Update(func(cur []T) ([]T, bool) {
		next := make([]T, 0, len(cur))

		for _, v := range cur {
			if del(v) {
				removed++

				continue
			}

			next = append(next, v)
		}

		return next, removed != 0
	})

	return removed
}

func (l *List[T]) Clear() {
	l.Update(func([]T) ([]T, bool) {
		return nil, true
	})
}

// AppendCopy appends items to a copy of cur. It never writes into cur's
// backing array, so it is safe to use on a snapshot inside Update.
func AppendCopy[T any](cur []T, items ...T) []T {
	next := make([]T, len(cur), len(cur)+len(items))
	copy(next, cur)

	return append(next, items...)
}
