// Package sokoban implements the warehouse puzzle simulation: level parsing,
// the two-layer grid and the push movement state machine.
// It has no UI dependencies so it can be driven by any front end.
package sokoban

import "unicode"

// Tile is the content of a single grid cell.
type Tile uint8

const (
	// TileNone marks a cell that was never written.
	TileNone Tile = iota
	TileWall
	TileFloor
	TileCrate
	TileDiamond
	TileKeeper
	TileCrateOnDiamond // display only, never stored in the object grid
)

// DebugSymbol renders cells that were never written.
const DebugSymbol = '='

var tileSymbols = [...]rune{
	TileNone:           DebugSymbol,
	TileWall:           'W',
	TileFloor:          ' ',
	TileCrate:          'C',
	TileDiamond:        'D',
	TileKeeper:         'S',
	TileCrateOnDiamond: 'O',
}

// TileFromRune decodes a level file character. Matching is case-insensitive
// and any unknown character decodes to a wall.
func TileFromRune(r rune) Tile {
	r = unicode.ToUpper(r)
	for t := TileWall; t <= TileCrateOnDiamond; t++ {
		if tileSymbols[t] == r {
			return t
		}
	}
	return TileWall
}

// Symbol returns the level file character for the tile.
func (t Tile) Symbol() rune {
	if int(t) >= len(tileSymbols) {
		return DebugSymbol
	}
	return tileSymbols[t]
}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileNone:
		return "None"
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileCrate:
		return "Crate"
	case TileDiamond:
		return "Diamond"
	case TileKeeper:
		return "Keeper"
	case TileCrateOnDiamond:
		return "CrateOnDiamond"
	default:
		return "Unknown"
	}
}
