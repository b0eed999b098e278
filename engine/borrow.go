package engine

import (
	"fmt"
	"reflect"
	"sync"
)

// borrowTracker enforces the shared/exclusive access discipline on one
// column at runtime. The compiler cannot prove that two views of the
// same type-erased column do not alias, so conflicting acquisition is a
// contract violation and panics instead of returning an error.
// Accounting is mutex-guarded so cross-goroutine misuse still fails
// loudly rather than racing.
type borrowTracker struct {
	mu      sync.Mutex
	readers int
	writer  bool
}

func (t *borrowTracker) acquireShared(typ reflect.Type) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.writer {
		panic(fmt.Sprintf("column %s is borrowed exclusively - cannot acquire shared view", typ))
	}
	t.readers++
}

func (t *borrowTracker) releaseShared() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readers--
}

func (t *borrowTracker) acquireExclusive(typ reflect.Type) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.writer {
		panic(fmt.Sprintf("column %s is already borrowed exclusively", typ))
	}
	if t.readers > 0 {
		panic(fmt.Sprintf("column %s has %d outstanding shared views - cannot acquire exclusive view", typ, t.readers))
	}
	t.writer = true
}

func (t *borrowTracker) releaseExclusive() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writer = false
}

// SharedView is a scoped read-only view of one column. Any number of
// shared views may be outstanding at once. Callers release with
// defer view.Release() at the acquisition site.
type SharedView[T any] struct {
	col      *Column[T]
	released bool
}

// Len returns the number of slots, equal to the world's entity count
func (v *SharedView[T]) Len() int {
	v.ensureLive()
	return len(v.col.present)
}

// Get returns the component for an entity and whether it is present
func (v *SharedView[T]) Get(e Entity) (T, bool) {
	v.ensureLive()
	if !v.col.present[e] {
		var zero T
		return zero, false
	}
	return v.col.values[e], true
}

// Each invokes fn for every entity whose slot is present
func (v *SharedView[T]) Each(fn func(e Entity, val T)) {
	v.ensureLive()
	for i, ok := range v.col.present {
		if ok {
			fn(Entity(i), v.col.values[i])
		}
	}
}

// Release returns the view's access to the column. Idempotent.
func (v *SharedView[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.col.tracker.releaseShared()
}

func (v *SharedView[T]) ensureLive() {
	if v.released {
		panic(fmt.Sprintf("shared view of column %s used after release", v.col.typ))
	}
}

// ExclusiveView is the sole read-write view of one column. While it is
// outstanding no other view of the same column may be acquired.
type ExclusiveView[T any] struct {
	col      *Column[T]
	released bool
}

// Len returns the number of slots, equal to the world's entity count
func (v *ExclusiveView[T]) Len() int {
	v.ensureLive()
	return len(v.col.present)
}

// Get returns the component for an entity and whether it is present
func (v *ExclusiveView[T]) Get(e Entity) (T, bool) {
	v.ensureLive()
	if !v.col.present[e] {
		var zero T
		return zero, false
	}
	return v.col.values[e], true
}

// Set inserts or overwrites the component for an entity
func (v *ExclusiveView[T]) Set(e Entity, val T) {
	v.ensureLive()
	v.col.values[e] = val
	v.col.present[e] = true
}

// Ptr returns a pointer to an entity's component for in-place mutation,
// or nil and false when the slot is absent. The pointer must not be
// retained past Release.
func (v *ExclusiveView[T]) Ptr(e Entity) (*T, bool) {
	v.ensureLive()
	if !v.col.present[e] {
		return nil, false
	}
	return &v.col.values[e], true
}

// EachPtr invokes fn with a mutable pointer for every present slot
func (v *ExclusiveView[T]) EachPtr(fn func(e Entity, val *T)) {
	v.ensureLive()
	for i, ok := range v.col.present {
		if ok {
			fn(Entity(i), &v.col.values[i])
		}
	}
}

// Release returns the view's access to the column. Idempotent.
func (v *ExclusiveView[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.col.tracker.releaseExclusive()
}

func (v *ExclusiveView[T]) ensureLive() {
	if v.released {
		panic(fmt.Sprintf("exclusive view of column %s used after release", v.col.typ))
	}
}
