package engine

// EntityBuilder provides a fluent interface for constructing an entity
// with its initial components. The entity id is reserved up front;
// components are attached one With call at a time and the finished id
// is returned by Build().
//
// Example:
//
//	e := engine.With(engine.With(w.Spawn(), Name{"Somebody"}), Health{10}).Build()
type EntityBuilder struct {
	world  *World
	entity Entity
	built  bool
}

// Spawn reserves a new entity id and returns a builder for it
func (w *World) Spawn() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.NewEntity(),
	}
}

// With attaches a component of type T to the entity being built.
// Returns the builder for chaining. Panics if called after Build().
func With[T any](eb *EntityBuilder, component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	AddComponent(eb.world, eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity id.
// Panics when called twice.
func (eb *EntityBuilder) Build() Entity {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.built = true
	return eb.entity
}
