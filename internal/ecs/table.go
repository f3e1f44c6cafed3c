package ecs

// Table stores one component type as a sparse set: a dense slice kept in
// insertion order plus an index from entity to slot. Iteration order is
// therefore stable across runs.
type Table[T any] struct {
	ids   []EntityID
	rows  []T
	index map[EntityID]int
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{index: make(map[EntityID]int)}
}

// Set attaches or replaces the component for id.
func (t *Table[T]) Set(id EntityID, v T) {
	if i, ok := t.index[id]; ok {
		t.rows[i] = v
		return
	}
	t.index[id] = len(t.rows)
	t.ids = append(t.ids, id)
	t.rows = append(t.rows, v)
}

// Get returns the component for id and whether it exists.
func (t *Table[T]) Get(id EntityID) (T, bool) {
	if i, ok := t.index[id]; ok {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer into the table for in-place mutation, or nil.
// The pointer is invalidated by the next Set of a new id or Remove.
func (t *Table[T]) Ptr(id EntityID) *T {
	if i, ok := t.index[id]; ok {
		return &t.rows[i]
	}
	return nil
}

// Has reports whether id has this component.
func (t *Table[T]) Has(id EntityID) bool {
	_, ok := t.index[id]
	return ok
}

// Remove detaches the component from id. Swaps the last row into the hole,
// so removal perturbs iteration order.
func (t *Table[T]) Remove(id EntityID) {
	i, ok := t.index[id]
	if !ok {
		return
	}
	last := len(t.rows) - 1
	if i != last {
		t.rows[i] = t.rows[last]
		t.ids[i] = t.ids[last]
		t.index[t.ids[i]] = i
	}
	t.rows = t.rows[:last]
	t.ids = t.ids[:last]
	delete(t.index, id)
}

// Len returns the number of entities carrying this component.
func (t *Table[T]) Len() int { return len(t.rows) }

// IDs returns a copy of the entity ids in table order.
func (t *Table[T]) IDs() []EntityID {
	out := make([]EntityID, len(t.ids))
	copy(out, t.ids)
	return out
}

// Each calls fn for every row in table order. fn must not add or remove rows.
func (t *Table[T]) Each(fn func(id EntityID, v T)) {
	for i, id := range t.ids {
		fn(id, t.rows[i])
	}
}
