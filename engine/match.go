package engine

// Match2 invokes fn for every entity present in both views. Entities
// missing either component are skipped; there is no index, just a
// linear walk over the slots.
func Match2[A, B any](a *SharedView[A], b *SharedView[B], fn func(e Entity, av A, bv B)) {
	n := a.Len()
	if m := b.Len(); m < n {
		n = m
	}

	for i := 0; i < n; i++ {
		e := Entity(i)
		av, ok := a.Get(e)
		if !ok {
			continue
		}
		bv, ok := b.Get(e)
		if !ok {
			continue
		}
		fn(e, av, bv)
	}
}

// MatchMut2 invokes fn with mutable pointers for every entity present
// in both views. Pointers are only valid for the duration of fn.
func MatchMut2[A, B any](a *ExclusiveView[A], b *ExclusiveView[B], fn func(e Entity, av *A, bv *B)) {
	n := a.Len()
	if m := b.Len(); m < n {
		n = m
	}

	for i := 0; i < n; i++ {
		e := Entity(i)
		av, ok := a.Ptr(e)
		if !ok {
			continue
		}
		bv, ok := b.Ptr(e)
		if !ok {
			continue
		}
		fn(e, av, bv)
	}
}
