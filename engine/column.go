package engine

import "reflect"

// anyColumn provides type-erased operations for column lifecycle management
// This interface allows World to keep heterogeneous columns in one slice
// and to grow them uniformly without knowing the concrete type
type anyColumn interface {
	// pushAbsent appends one absent slot, keeping the column
	// length-synchronized with the world's entity count
	pushAbsent()

	// componentType returns the runtime identity of the stored type
	componentType() reflect.Type
}

// Column is the storage for a single component type T: one optional
// value per entity, held as parallel value/present slices for
// cache-friendly iteration
type Column[T any] struct {
	tracker borrowTracker
	typ     reflect.Type
	values  []T
	present []bool
}

// newColumn creates a column of n absent slots
func newColumn[T any](n int) *Column[T] {
	return &Column[T]{
		typ:     reflect.TypeOf((*T)(nil)).Elem(),
		values:  make([]T, n),
		present: make([]bool, n),
	}
}

func (c *Column[T]) pushAbsent() {
	// Growth counts as a write; any outstanding view makes this a
	// contract violation rather than a silent reallocation under it
	c.tracker.acquireExclusive(c.typ)
	defer c.tracker.releaseExclusive()

	var zero T
	c.values = append(c.values, zero)
	c.present = append(c.present, false)
}

func (c *Column[T]) componentType() reflect.Type {
	return c.typ
}

// setSlot inserts or overwrites the component for one entity
func (c *Column[T]) setSlot(e Entity, val T) {
	c.tracker.acquireExclusive(c.typ)
	defer c.tracker.releaseExclusive()

	c.values[e] = val
	c.present[e] = true
}

// borrowShared acquires a read-only view of the column
func (c *Column[T]) borrowShared() *SharedView[T] {
	c.tracker.acquireShared(c.typ)
	return &SharedView[T]{col: c}
}

// borrowExclusive acquires the sole read-write view of the column
func (c *Column[T]) borrowExclusive() *ExclusiveView[T] {
	c.tracker.acquireExclusive(c.typ)
	return &ExclusiveView[T]{col: c}
}
