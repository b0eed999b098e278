// Package engine implements a minimal columnar entity-component world.
// Component data lives in one type-erased column per component type,
// indexed by entity id, and is reached only through runtime-tracked
// shared/exclusive views.
package engine

// Entity is a unique identifier for an entity
// Ids are assigned sequentially from 0 and never recycled
type Entity int

// System is a unit of behavior given exclusive world access for one invocation
type System func(world *World)
