package sokoban

import (
	"iter"
	"strings"
)

// Grid is a fixed-size rectangle of tiles.
// Cells are stored in row-major order: index = row*columns + col.
type Grid struct {
	columns int
	rows    int
	cells   []Tile
}

// NewGrid creates a grid with every cell unset.
func NewGrid(columns, rows int) *Grid {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]Tile, columns*rows),
	}
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

func (g *Grid) index(col, row int) int {
	return row*g.columns + col
}

// Get returns the tile at (col, row).
// Reading outside the grid is a caller bug and returns a *BoundsError.
func (g *Grid) Get(col, row int) (Tile, error) {
	if !g.InBounds(col, row) {
		return TileNone, &BoundsError{Col: col, Row: row, Columns: g.columns, Rows: g.rows}
	}
	return g.cells[g.index(col, row)], nil
}

// At returns the tile at p.
func (g *Grid) At(p Point) (Tile, error) {
	if p == NoPoint {
		return TileNone, ErrInvalidPoint
	}
	return g.Get(p.X, p.Y)
}

// Put stores t at (col, row). It returns false and leaves the grid untouched
// when the coordinate is outside the grid.
func (g *Grid) Put(t Tile, col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	g.cells[g.index(col, row)] = t
	return true
}

// PutAt stores t at p.
func (g *Grid) PutAt(t Tile, p Point) bool {
	return g.Put(t, p.X, p.Y)
}

// Remove unsets the cell at p.
func (g *Grid) Remove(p Point) bool {
	return g.PutAt(TileNone, p)
}

// Tiles yields every tile in row-major order, column varying fastest.
// Each call starts a fresh pass.
func (g *Grid) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range g.cells {
			if !yield(t) {
				return
			}
		}
	}
}

// Cells yields every coordinate with its tile in row-major order.
func (g *Grid) Cells() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for row := 0; row < g.rows; row++ {
			for col := 0; col < g.columns; col++ {
				if !yield(Pt(col, row), g.cells[g.index(col, row)]) {
					return
				}
			}
		}
	}
}

// Format renders the grid one symbol per cell and one line per row,
// drawing unset cells as unset.
func (g *Grid) Format(unset Tile) string {
	var sb strings.Builder
	sb.Grow(g.columns*g.rows + g.rows)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.columns; col++ {
			t := g.cells[g.index(col, row)]
			if t == TileNone {
				t = unset
			}
			sb.WriteRune(t.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid with unset cells shown as DebugSymbol.
func (g *Grid) String() string {
	return g.Format(TileNone)
}
