// tilemap-demo renders a small example map to stdout: a hero and an enemy
// on an otherwise empty field. Spacing is adjustable through flags to make
// it easy to eyeball formatting changes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/drake/tilemap"
	"github.com/drake/tilemap/grid"
)

type entity int

const (
	air entity = iota
	hero
	enemy
)

func (e entity) Tile() tilemap.Token {
	switch e {
	case hero:
		return tilemap.NewToken("[&]").Foreground(lipgloss.Color("2")).Bold()
	case enemy:
		return tilemap.NewToken("[@]").Foreground(lipgloss.Color("1")).Bold()
	default:
		return tilemap.NewToken("[-]").Foreground(lipgloss.Color("8")).Bold()
	}
}

func main() {
	width := flag.Int("width", 5, "map width in tiles")
	depth := flag.Int("depth", 5, "map depth in tiles")
	rowSpacing := flag.Int("row-spacing", 1, "extra newlines between rows")
	tileSpacing := flag.Int("tile-spacing", 1, "spaces before each tile")
	flag.Parse()

	m, err := tilemap.New[entity](*width, *depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilemap-demo: %v\n", err)
		os.Exit(1)
	}
	m.Formatting.RowSpacing = *rowSpacing
	m.Formatting.TileSpacing = *tileSpacing

	for _, placed := range []struct {
		cell grid.Cell
		e    entity
	}{
		{grid.NewCell(1, 0), hero},
		{grid.NewCell(3, 3), enemy},
	} {
		if m.Bounds().Contains(placed.cell) {
			m.Insert(placed.cell, placed.e)
		}
	}

	if err := m.Draw(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tilemap-demo: %v\n", err)
		os.Exit(1)
	}
}
