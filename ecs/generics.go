package ecs

// Add attaches v to e under kind k, replacing any previous value. The world
// keeps the pointer, so later mutation through Get is visible to every
// reader.
func Add[T any](w *World, e Entity, k Kind[T], v *T) error {
	if v == nil {
		return ErrNilComponent
	}
	if !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	w.tableFor(k.id, true).set(e.id(), v)
	return nil
}

// Get returns the component of kind k attached to e, or false when e is dead
// or has no such component.
func Get[T any](w *World, e Entity, k Kind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.tableFor(k.id, false).get(e.id())
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

// Has reports whether live entity e carries a component of kind k.
func Has[T any](w *World, e Entity, k Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.tableFor(k.id, false).has(e.id())
}

// Remove detaches the component of kind k from e. It reports whether a
// component was actually removed.
func Remove[T any](w *World, e Entity, k Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.tableFor(k.id, false).remove(e.id())
}

// Count returns the number of live entities carrying kind k.
func Count[T any](w *World, k Kind[T]) int {
	n := 0
	ForEach(w, k, func(Entity, *T) { n++ })
	return n
}

// First returns some live entity carrying kind k along with its component.
// Which entity is returned is unspecified when several match.
func First[T any](w *World, k Kind[T]) (Entity, *T, bool) {
	t := w.tableFor(k.id, false)
	if t == nil {
		return 0, nil, false
	}
	for i, id := range t.ids {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		return e, t.vals[i].(*T), true
	}
	return 0, nil, false
}

// ForEach calls fn for every live entity carrying kind k. Rows belonging to
// destroyed entities are skipped. fn must not create or destroy entities of
// the same kind mid-iteration.
func ForEach[T any](w *World, k Kind[T], fn func(e Entity, v *T)) {
	t := w.tableFor(k.id, false)
	if t == nil {
		return
	}
	for i, id := range t.ids {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		fn(e, t.vals[i].(*T))
	}
}

// ForEach2 calls fn for every live entity carrying both kinds. It walks the
// smaller table and probes the other.
func ForEach2[A, B any](w *World, ka Kind[A], kb Kind[B], fn func(e Entity, a *A, b *B)) {
	ta := w.tableFor(ka.id, false)
	tb := w.tableFor(kb.id, false)
	if ta.len() == 0 || tb.len() == 0 {
		return
	}
	if tb.len() < ta.len() {
		for i, id := range tb.ids {
			e, ok := w.entities.entityFor(id)
			if !ok {
				continue
			}
			av := ta.get(id)
			if av == nil {
				continue
			}
			fn(e, av.(*A), tb.vals[i].(*B))
		}
		return
	}
	for i, id := range ta.ids {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		bv := tb.get(id)
		if bv == nil {
			continue
		}
		fn(e, ta.vals[i].(*A), bv.(*B))
	}
}
