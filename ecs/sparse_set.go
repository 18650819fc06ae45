package ecs

// table is sparse-set storage for one component kind. Component values live
// packed in insertion order so iteration walks contiguous memory, while the
// sparse index maps raw entity ids to dense slots.
type table struct {
	ids    []uint32
	vals   []any
	sparse []int32
}

func (t *table) slot(id uint32) (int32, bool) {
	if t == nil || id == 0 || int(id) >= len(t.sparse) {
		return -1, false
	}
	idx := t.sparse[id]
	if idx < 0 {
		return -1, false
	}
	return idx, true
}

func (t *table) has(id uint32) bool {
	_, ok := t.slot(id)
	return ok
}

func (t *table) get(id uint32) any {
	idx, ok := t.slot(id)
	if !ok {
		return nil
	}
	return t.vals[idx]
}

func (t *table) set(id uint32, v any) {
	if t == nil || id == 0 {
		return
	}
	if idx, ok := t.slot(id); ok {
		t.vals[idx] = v
		return
	}
	for int(id) >= len(t.sparse) {
		t.sparse = append(t.sparse, -1)
	}
	t.ids = append(t.ids, id)
	t.vals = append(t.vals, v)
	t.sparse[id] = int32(len(t.ids) - 1)
}

// remove swaps the last dense row into the vacated slot so the dense arrays
// stay packed.
func (t *table) remove(id uint32) bool {
	idx, ok := t.slot(id)
	if !ok {
		return false
	}
	last := int32(len(t.ids) - 1)
	lastID := t.ids[last]

	t.ids[idx] = lastID
	t.vals[idx] = t.vals[last]
	t.sparse[lastID] = idx

	t.vals[last] = nil
	t.ids = t.ids[:last]
	t.vals = t.vals[:last]
	t.sparse[id] = -1
	return true
}

func (t *table) len() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}
