package sokoban

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for reads outside the grid.
	ErrOutOfBounds = errors.New("sokoban: point outside the grid")
	// ErrInvalidPoint is returned for reads at NoPoint.
	ErrInvalidPoint = errors.New("sokoban: point cannot be absent")
	// ErrEmptyLevel is returned when a level has no grid rows.
	ErrEmptyLevel = errors.New("sokoban: level has no rows")
	// ErrNoKeeper is returned when a level has no keeper tile.
	ErrNoKeeper = errors.New("sokoban: level has no keeper")
)

// BoundsError records the coordinate and grid size of a failed read.
type BoundsError struct {
	Col, Row      int
	Columns, Rows int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sokoban: point [%d:%d] is outside the %dx%d grid", e.Col, e.Row, e.Columns, e.Rows)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// InvariantError is raised (as a panic) when the object grid holds a tile
// that move resolution can never legally see.
type InvariantError struct {
	Tile  Tile
	Point Point
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sokoban: object grid holds %s at %s", e.Tile, e.Point)
}

// LevelError ties a parse failure to the level that caused it.
type LevelError struct {
	Index int
	Name  string
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("level %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}
