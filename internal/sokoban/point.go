package sokoban

import (
	"fmt"
	"strings"
)

// Point is a grid coordinate. X is the column, Y is the row; Y grows downward.
type Point struct {
	X int
	Y int
}

// NoPoint is the absent coordinate. Grid reads reject it.
var NoPoint = Point{X: -1, Y: -1}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Translate returns source offset by delta. No bounds are checked here;
// the following Get or Put does that.
func Translate(source, delta Point) Point {
	return Point{X: source.X + delta.X, Y: source.Y + delta.Y}
}

// Direction is one of the four keeper moves.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in clockwise order starting from Up.
var Directions = []Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset for one step in this direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// ParseDirection accepts direction names and the single letters u, r, d, l.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("sokoban: unknown direction %q", s)
}
