package engine

import (
	"fmt"
	"reflect"
	"sync"
)

// World owns the entity count and one column per component type that
// has ever been attached. Columns are discovered by linear scan on
// runtime type identity; the number of distinct component types stays
// small relative to entity count, so no keyed index is kept.
type World struct {
	mu          sync.Mutex
	entityCount int
	columns     []anyColumn

	// Global per-type singletons for consumers (config, clocks)
	Resources *ResourceStore

	updateMutex sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		columns:   make([]anyColumn, 0),
		Resources: NewResourceStore(),
	}
}

// NewEntity allocates the next entity id and appends one absent slot
// to every existing column, so a fresh entity is missing every known
// component until one is attached. Never fails.
//
// Growth writes every column, so calling NewEntity while any view is
// outstanding is a contract violation and panics.
func (w *World) NewEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := Entity(w.entityCount)
	for _, col := range w.columns {
		col.pushAbsent()
	}
	w.entityCount++
	return id
}

// EntityCount returns the number of entities created so far
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entityCount
}

// ComponentTypes returns the runtime identity of every column, in
// registration order
func (w *World) ComponentTypes() []reflect.Type {
	w.mu.Lock()
	defer w.mu.Unlock()

	types := make([]reflect.Type, len(w.columns))
	for i, col := range w.columns {
		types[i] = col.componentType()
	}
	return types
}

// AddComponent attaches a component to an entity, overwriting any value
// already present for that type. The column for T is created lazily on
// first attachment, sized to the current entity count with every other
// slot absent.
//
// The entity must have been created by this world; an out-of-range id
// is a programming error and panics.
func AddComponent[T any](w *World, e Entity, component T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if e < 0 || int(e) >= w.entityCount {
		panic(fmt.Sprintf("entity %d out of range - world has %d entities", e, w.entityCount))
	}

	for _, col := range w.columns {
		if typed, ok := col.(*Column[T]); ok {
			typed.setSlot(e, component)
			return
		}
	}

	col := newColumn[T](w.entityCount)
	col.setSlot(e, component)
	w.columns = append(w.columns, col)
}

// Borrow acquires a shared view of T's column. Returns false when no
// component of type T has ever been attached. The caller releases with
// defer view.Release().
func Borrow[T any](w *World) (*SharedView[T], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, col := range w.columns {
		if typed, ok := col.(*Column[T]); ok {
			return typed.borrowShared(), true
		}
	}
	return nil, false
}

// BorrowMut acquires the exclusive view of T's column. Returns false
// when no component of type T has ever been attached. The caller
// releases with defer view.Release().
func BorrowMut[T any](w *World) (*ExclusiveView[T], bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, col := range w.columns {
		if typed, ok := col.(*Column[T]); ok {
			return typed.borrowExclusive(), true
		}
	}
	return nil, false
}

// Update runs each system once, in slice order, each completing fully
// (including releasing its views) before the next begins. The caller
// owns the system list; the world stores nothing between calls.
func (w *World) Update(systems []System) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	for _, system := range systems {
		system(w)
	}
}
