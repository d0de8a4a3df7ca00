package sokoban

import (
	"iter"
	"strings"
)

// Level is one puzzle: a mutable object grid (walls, floor, crates, keeper)
// and an immutable overlay marking the diamond goal cells.
// Diamonds never live in the object grid, so a crate can stand on a goal
// without either layer needing a combined state.
type Level struct {
	name     string
	index    int
	objects  *Grid
	diamonds *Grid
	keeper   Point
	goals    int
	source   []string
}

// NewLevel decodes rows into a level. The row count gives the height and the
// trimmed length of the first row gives the width; characters past that
// width are dropped.
func NewLevel(name string, index int, rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	columns := len([]rune(strings.TrimSpace(rows[0])))
	l := &Level{
		name:     name,
		index:    index,
		objects:  NewGrid(columns, len(rows)),
		diamonds: NewGrid(columns, len(rows)),
		keeper:   NoPoint,
		source:   append([]string(nil), rows...),
	}

	for row, line := range rows {
		for col, r := range []rune(line) {
			tile := TileFromRune(r)

			switch tile {
			case TileDiamond:
				l.goals++
				l.diamonds.Put(TileDiamond, col, row)
				tile = TileFloor
			case TileCrateOnDiamond:
				l.goals++
				l.diamonds.Put(TileDiamond, col, row)
				tile = TileCrate
			case TileKeeper:
				if l.objects.InBounds(col, row) {
					l.keeper = Pt(col, row)
				}
			}

			l.objects.Put(tile, col, row)
		}
	}

	if l.keeper == NoPoint {
		return nil, ErrNoKeeper
	}
	return l, nil
}

// Name returns the level name.
func (l *Level) Name() string {
	return l.name
}

// Index returns the 1-based position of the level in its map set.
func (l *Level) Index() int {
	return l.index
}

// Diamonds returns the number of goal cells.
func (l *Level) Diamonds() int {
	return l.goals
}

// KeeperPosition returns the current keeper coordinate.
func (l *Level) KeeperPosition() Point {
	return l.keeper
}

// Columns returns the level width.
func (l *Level) Columns() int {
	return l.objects.Columns()
}

// Rows returns the level height.
func (l *Level) Rows() int {
	return l.objects.Rows()
}

// Source returns a copy of the rows the level was built from.
func (l *Level) Source() []string {
	return append([]string(nil), l.source...)
}

// CratesOnDiamonds counts cells where a crate sits on a goal.
func (l *Level) CratesOnDiamonds() int {
	n := 0
	for p, t := range l.objects.Cells() {
		if t != TileCrate {
			continue
		}
		if d, _ := l.diamonds.At(p); d == TileDiamond {
			n++
		}
	}
	return n
}

// IsComplete reports whether at least as many crates sit on goals as there
// are goals. This is a coverage count, not a per-goal match.
func (l *Level) IsComplete() bool {
	return l.CratesOnDiamonds() >= l.goals
}

// ObjectAt returns the object grid tile at p.
func (l *Level) ObjectAt(p Point) (Tile, error) {
	return l.objects.At(p)
}

// TargetObject returns the object grid tile one delta away from source.
func (l *Level) TargetObject(source, delta Point) (Tile, error) {
	return l.objects.At(Translate(source, delta))
}

// MoveObjectBy relocates t from source to source+delta. Whatever occupied
// the destination is written back to source, which keeps the floor intact
// because the engine only moves onto floor.
func (l *Level) MoveObjectBy(t Tile, source, delta Point) error {
	destination := Translate(source, delta)
	previous, err := l.objects.At(destination)
	if err != nil {
		return err
	}
	if _, err := l.objects.At(source); err != nil {
		return err
	}

	l.objects.PutAt(previous, source)
	l.objects.PutAt(t, destination)
	return nil
}

// setKeeper records the new keeper coordinate after a move.
func (l *Level) setKeeper(p Point) {
	l.keeper = p
}

// Tiles yields the merged render view in row-major order: goal cells show
// as a diamond or a crate on a diamond, everything else as stored.
// Iteration never modifies the level.
func (l *Level) Tiles() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for p, object := range l.objects.Cells() {
			if !yield(p, l.merged(p, object)) {
				return
			}
		}
	}
}

func (l *Level) merged(p Point, object Tile) Tile {
	diamond, _ := l.diamonds.At(p)
	if diamond != TileDiamond {
		return object
	}
	switch object {
	case TileCrate:
		return TileCrateOnDiamond
	case TileFloor:
		return TileDiamond
	default:
		return object
	}
}

// Render draws the merged view as text, one line per row.
func (l *Level) Render() string {
	var sb strings.Builder
	for p, t := range l.Tiles() {
		if t == TileNone {
			t = TileFloor
		}
		sb.WriteRune(t.Symbol())
		if p.X == l.Columns()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String renders the object grid.
func (l *Level) String() string {
	return l.objects.String()
}
