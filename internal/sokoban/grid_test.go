package sokoban

import (
	"errors"
	"testing"
)

func TestGridDimensions(t *testing.T) {
	g := NewGrid(5, 3)
	if g.Columns() != 5 || g.Rows() != 3 {
		t.Errorf("expected 5x3 grid, got %dx%d", g.Columns(), g.Rows())
	}
}

func TestGridPut(t *testing.T) {
	columns, rows := 5, 5
	g := NewGrid(columns, rows)

	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"last cell", columns - 1, rows - 1, true},
		{"origin", 0, 0, true},
		{"one past the edge", columns, rows, false},
		{"well past the edge", columns + 1, rows + 1, false},
		{"negative column", -1, 0, false},
		{"negative row", 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Put(TileCrate, tc.col, tc.row); got != tc.expected {
				t.Errorf("Put(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.expected)
			}
		})
	}
}

func TestGridGetAfterPut(t *testing.T) {
	g := NewGrid(4, 3)
	g.Put(TileCrate, 3, 2)

	got, err := g.Get(3, 2)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != TileCrate {
		t.Errorf("Get(3, 2) = %v, expected Crate", got)
	}

	// Column and row must not be transposed.
	if _, err := g.Get(2, 3); err == nil {
		t.Error("Get(2, 3) on a 4x3 grid should be out of bounds")
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	for _, p := range []Point{Pt(-1, 0), Pt(0, -1), Pt(3, 0), Pt(0, 3)} {
		_, err := g.At(p)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v, expected ErrOutOfBounds", p, err)
		}
		var be *BoundsError
		if !errors.As(err, &be) || be.Col != p.X || be.Row != p.Y {
			t.Errorf("At(%v) should report the failing coordinate, got %v", p, err)
		}
	}
}

func TestGridAtNoPoint(t *testing.T) {
	g := NewGrid(3, 3)
	if _, err := g.At(NoPoint); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("At(NoPoint) error = %v, expected ErrInvalidPoint", err)
	}
}

func TestGridPutOutOfBoundsDoesNotMutate(t *testing.T) {
	g := NewGrid(2, 2)
	before := g.String()
	g.Put(TileWall, 2, 0)
	g.Put(TileWall, 0, 2)
	if g.String() != before {
		t.Errorf("out of bounds Put changed the grid:\n%s", g.String())
	}
}

func TestGridRemove(t *testing.T) {
	g := NewGrid(2, 2)
	g.PutAt(TileCrate, Pt(1, 1))

	if !g.Remove(Pt(1, 1)) {
		t.Fatal("Remove() should succeed inside the grid")
	}
	if got, _ := g.At(Pt(1, 1)); got != TileNone {
		t.Errorf("after Remove() cell = %v, expected None", got)
	}
	if g.Remove(Pt(5, 5)) {
		t.Error("Remove() outside the grid should fail")
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(Pt(2, 3), Pt(-1, 1))
	if got != Pt(1, 4) {
		t.Errorf("Translate() = %v, expected (1,4)", got)
	}

	// No bounds check.
	got = Translate(Pt(0, 0), DirUp.Delta())
	if got != Pt(0, -1) {
		t.Errorf("Translate() = %v, expected (0,-1)", got)
	}
}

func TestGridTilesRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	g.Put(TileWall, 0, 0)
	g.Put(TileFloor, 1, 0)
	g.Put(TileCrate, 2, 0)
	g.Put(TileKeeper, 0, 1)
	g.Put(TileFloor, 1, 1)
	g.Put(TileWall, 2, 1)

	expected := []Tile{TileWall, TileFloor, TileCrate, TileKeeper, TileFloor, TileWall}

	// Two passes: each call must restart from the first cell.
	for pass := 0; pass < 2; pass++ {
		var got []Tile
		for tile := range g.Tiles() {
			got = append(got, tile)
		}
		if len(got) != len(expected) {
			t.Fatalf("pass %d: got %d tiles, expected %d", pass, len(got), len(expected))
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("pass %d: tile %d = %v, expected %v", pass, i, got[i], expected[i])
			}
		}
	}
}

func TestGridCellsOrder(t *testing.T) {
	g := NewGrid(2, 2)
	var points []Point
	for p := range g.Cells() {
		points = append(points, p)
	}

	expected := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1)}
	for i, p := range expected {
		if points[i] != p {
			t.Errorf("cell %d = %v, expected %v", i, points[i], p)
		}
	}
}

func TestGridTilesEarlyStop(t *testing.T) {
	g := NewGrid(10, 10)
	n := 0
	for range g.Tiles() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected to stop after 3 tiles, got %d", n)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Put(TileWall, 0, 0)
	g.Put(TileKeeper, 1, 0)
	g.Put(TileWall, 2, 0)
	g.Put(TileCrate, 1, 1)

	expected := "WSW\n=C=\n"
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if got := g.Format(TileFloor); got != "WSW\n C \n" {
		t.Errorf("Format(Floor) = %q", got)
	}

	// Rendering must not fill unset cells.
	if got, _ := g.Get(0, 1); got != TileNone {
		t.Errorf("unset cell read as %v after rendering", got)
	}
}

// count returns how many cells hold t.
func (g *Grid) count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}
