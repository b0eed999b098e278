package engine

import "testing"

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()

	var order []string
	systems := []System{
		func(w *World) { order = append(order, "first") },
		func(w *World) { order = append(order, "second") },
		func(w *World) { order = append(order, "third") },
	}

	w.Update(systems)

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("Expected systems to run once each in list order, got %v", order)
	}
}

// A later system must observe an earlier system's writes within the
// same update pass
func TestUpdateOrderingEffects(t *testing.T) {
	w := NewWorld()
	e := w.NewEntity()
	AddComponent(w, e, HealthComponent{Current: 1})

	var observed int

	setter := func(w *World) {
		healths, _ := BorrowMut[HealthComponent](w)
		defer healths.Release()
		healths.Set(e, HealthComponent{Current: 50})
	}
	reader := func(w *World) {
		healths, _ := Borrow[HealthComponent](w)
		defer healths.Release()
		h, _ := healths.Get(e)
		observed = h.Current
	}

	w.Update([]System{setter, reader})

	if observed != 50 {
		t.Errorf("Expected reader to observe setter's effect, got %d", observed)
	}
}

// End-to-end scenario: heal matched entities directly, then run an
// ordered heal/rename pass through Update
func TestHealRenameScenario(t *testing.T) {
	w := NewWorld()
	e := w.NewEntity()
	AddComponent(w, e, NameComponent{Value: "Somebody"})
	AddComponent(w, e, HealthComponent{Current: 10})

	healths, _ := BorrowMut[HealthComponent](w)
	names, _ := BorrowMut[NameComponent](w)
	MatchMut2(healths, names, func(e Entity, h *HealthComponent, n *NameComponent) {
		h.Current = 100
	})

	if h, _ := healths.Get(e); h.Current != 100 {
		t.Errorf("Expected health healed to 100, got %d", h.Current)
	}
	if n, _ := names.Get(e); n.Value != "Somebody" {
		t.Errorf("Expected name unchanged, got %q", n.Value)
	}
	names.Release()
	healths.Release()

	healSystem := func(w *World) {
		healths, _ := BorrowMut[HealthComponent](w)
		defer healths.Release()
		healths.EachPtr(func(e Entity, h *HealthComponent) {
			h.Current = 100
		})
	}
	renameSystem := func(w *World) {
		names, _ := BorrowMut[NameComponent](w)
		defer names.Release()
		names.EachPtr(func(e Entity, n *NameComponent) {
			n.Value = "New name"
		})
	}

	w.Update([]System{healSystem, renameSystem})

	healths2, _ := Borrow[HealthComponent](w)
	defer healths2.Release()
	names2, _ := Borrow[NameComponent](w)
	defer names2.Release()

	if h, _ := healths2.Get(e); h.Current != 100 {
		t.Errorf("Expected health 100 after update, got %d", h.Current)
	}
	if n, _ := names2.Get(e); n.Value != "New name" {
		t.Errorf("Expected name %q after update, got %q", "New name", n.Value)
	}
}

// A system holding a shared view of a column must not acquire an
// exclusive view of the same column; the whole update dies
func TestUpdateConflictingBorrowPanics(t *testing.T) {
	w := NewWorld()
	e := w.NewEntity()
	AddComponent(w, e, HealthComponent{Current: 10})

	defer expectPanic(t, "Expected update to panic on conflicting borrow inside a system")

	bad := func(w *World) {
		healths, _ := Borrow[HealthComponent](w)
		defer healths.Release()
		BorrowMut[HealthComponent](w)
	}
	w.Update([]System{bad})
}
