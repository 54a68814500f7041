package grid

import "fmt"

// Map is a sparse store of V keyed by Cell, bounded by a Grid. Only occupied
// cells are held; an absent key means the cell is empty. Map is not safe for
// concurrent use.
type Map[V any] struct {
	grid  Grid
	cells map[Cell]V
}

// NewMap returns an empty Map over the given bounds.
func NewMap[V any](g Grid) *Map[V] {
	return &Map[V]{grid: g, cells: make(map[Cell]V)}
}

// FromEntries returns a Map over the given bounds holding the given entries.
//
// FromEntries panics if any entry's cell lies outside the bounds. An
// out-of-bounds entry is a programming mistake on the caller's side, not a
// runtime condition, so it aborts rather than returning an error.
func FromEntries[V any](g Grid, entries map[Cell]V) *Map[V] {
	for c := range entries {
		if !g.Contains(c) {
			panic(fmt.Sprintf("grid: cell %v outside %dx%d bounds", c, g.width, g.depth))
		}
	}
	m := &Map[V]{grid: g, cells: make(map[Cell]V, len(entries))}
	for c, v := range entries {
		m.cells[c] = v
	}
	return m
}

// Grid returns the bounds the map was constructed with.
func (m *Map[V]) Grid() Grid { return m.grid }

// Insert stores v at c, replacing any previous value.
//
// Insert panics if c lies outside the map's bounds, for the same reason
// FromEntries does.
func (m *Map[V]) Insert(c Cell, v V) {
	if !m.grid.Contains(c) {
		panic(fmt.Sprintf("grid: cell %v outside %dx%d bounds", c, m.grid.width, m.grid.depth))
	}
	m.cells[c] = v
}

// Get returns the value stored at c, if any.
func (m *Map[V]) Get(c Cell) (V, bool) {
	v, ok := m.cells[c]
	return v, ok
}

// Remove deletes the value at c. Removing an empty cell is a no-op.
func (m *Map[V]) Remove(c Cell) {
	delete(m.cells, c)
}

// Len returns the number of occupied cells.
func (m *Map[V]) Len() int { return len(m.cells) }
