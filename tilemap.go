// Package tilemap renders a sparse grid of tiles as styled text for
// terminal-based games and tools.
//
// Any type implementing Tile can be placed on a TileMap by cell. Drawing
// walks the grid in row-major order, resolves each cell to its token (the
// stored value, or the type's zero value for empty cells) and writes the
// result with configurable spacing and indentation. Draw and String emit
// byte-identical output for the same map state; they differ only in the
// destination.
package tilemap

import (
	"io"
	"strings"

	"github.com/drake/tilemap/grid"
)

// TileMap renders values of T placed on a sparse grid. Formatting may be
// reassigned at any time and takes effect on the next render.
//
// TileMap does no internal locking; callers sharing one across goroutines
// must synchronize themselves.
type TileMap[T Tile] struct {
	Formatting Formatting
	cells      *grid.Map[T]
}

// New returns an empty TileMap of the given dimensions with default
// formatting. It returns an error if the grid engine rejects the bounds.
func New[T Tile](width, depth int) (*TileMap[T], error) {
	g, err := grid.New(width, depth)
	if err != nil {
		return nil, err
	}
	return FromGrid[T](g), nil
}

// NewFormatted is New with caller-supplied formatting.
func NewFormatted[T Tile](width, depth int, f Formatting) (*TileMap[T], error) {
	m, err := New[T](width, depth)
	if err != nil {
		return nil, err
	}
	m.Formatting = f
	return m, nil
}

// FromGrid returns an empty TileMap over the given bounds with default
// formatting.
func FromGrid[T Tile](g grid.Grid) *TileMap[T] {
	return &TileMap[T]{
		Formatting: DefaultFormatting(),
		cells:      grid.NewMap[T](g),
	}
}

// FromMap adopts an existing populated sparse map with default formatting.
// The map is used as-is, bounds and all.
func FromMap[T Tile](m *grid.Map[T]) *TileMap[T] {
	return &TileMap[T]{
		Formatting: DefaultFormatting(),
		cells:      m,
	}
}

// FromEntries returns a TileMap over the given bounds holding the given
// entries, with default formatting.
//
// Like grid.FromEntries, it panics if any entry's cell lies outside the
// bounds.
func FromEntries[T Tile](g grid.Grid, entries map[grid.Cell]T) *TileMap[T] {
	return &TileMap[T]{
		Formatting: DefaultFormatting(),
		cells:      grid.FromEntries(g, entries),
	}
}

// Bounds returns the map's grid bounds.
func (m *TileMap[T]) Bounds() grid.Grid { return m.cells.Grid() }

// Insert places v at c. It panics if c is outside the map's bounds.
func (m *TileMap[T]) Insert(c grid.Cell, v T) { m.cells.Insert(c, v) }

// Get returns the value stored at c, if any. Empty cells report false; they
// still render, as T's zero value.
func (m *TileMap[T]) Get(c grid.Cell) (T, bool) { return m.cells.Get(c) }

// Remove clears the cell at c.
func (m *TileMap[T]) Remove(c grid.Cell) { m.cells.Remove(c) }

// Len returns the number of occupied cells.
func (m *TileMap[T]) Len() int { return m.cells.Len() }

// Draw writes the rendered map to w: TopIndent newlines, then each row as
// RowSpacing newlines, LeftIndent tabs and the row's tiles each preceded by
// TileSpacing spaces, a newline after the row's last tile, and finally
// BottomIndent newlines. The first write error aborts the render and is
// returned; nothing already written is rolled back.
//
// Writes are not buffered beyond what w provides, and rendering makes
// several small writes per cell, so wrap slow destinations in a bufio.Writer.
func (m *TileMap[T]) Draw(w io.Writer) error {
	f := m.Formatting
	if err := writeRepeat(w, "\n", f.TopIndent); err != nil {
		return err
	}
	for _, row := range m.Bounds().Rows() {
		if err := writeRepeat(w, "\n", f.RowSpacing); err != nil {
			return err
		}
		if err := writeRepeat(w, "\t", f.LeftIndent); err != nil {
			return err
		}
		for _, c := range row.Cells() {
			if err := writeRepeat(w, " ", f.TileSpacing); err != nil {
				return err
			}
			if _, err := io.WriteString(w, m.token(c).Render()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return writeRepeat(w, "\n", f.BottomIndent)
}

// String renders the map exactly as Draw would, into a string. It is the
// same pass with an in-memory sink, so the result matches Draw's output
// byte for byte.
func (m *TileMap[T]) String() string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = m.Draw(&sb)
	return sb.String()
}

// token resolves the cell at c: the stored value if present, else the zero
// value of T.
func (m *TileMap[T]) token(c grid.Cell) Token {
	v, ok := m.cells.Get(c)
	if !ok {
		var empty T
		v = empty
	}
	return v.Tile()
}

func writeRepeat(w io.Writer, s string, n int) error {
	_, err := io.WriteString(w, strings.Repeat(s, n))
	return err
}
