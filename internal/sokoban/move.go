package sokoban

import "fmt"

// Outcome classifies how a move command was resolved.
type Outcome uint8

const (
	// OutcomeIgnored means there was no level to play.
	OutcomeIgnored Outcome = iota
	// OutcomeBlocked means a wall, a stuck crate or the grid edge stopped the keeper.
	OutcomeBlocked
	// OutcomeWalked means the keeper stepped onto floor.
	OutcomeWalked
	// OutcomePushed means the keeper pushed a crate one cell.
	OutcomePushed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeWalked:
		return "Walked"
	case OutcomePushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// MoveResult reports what a move command did.
type MoveResult struct {
	Outcome Outcome
	// LevelComplete is set when this move solved the level it was made in.
	LevelComplete bool
	// Level is the level the move was made in.
	Level *Level
	// LevelMoves is the move count of that level after the move.
	LevelMoves   int
	GameComplete bool
}

// Moved reports whether the keeper changed position.
func (r MoveResult) Moved() bool {
	return r.Outcome == OutcomeWalked || r.Outcome == OutcomePushed
}

// HandleDirection moves the keeper one step in d.
func (e *Engine) HandleDirection(d Direction) MoveResult {
	if e.debug {
		e.logger.Debug("direction", "dir", d)
	}
	return e.Move(d.Delta())
}

// Move resolves one keeper step by delta against the current level.
//
// The target cell is checked in the order wall, crate, floor. A crate is only
// pushed when the cell beyond it is floor, and that check happens before any
// write, so a rejected push leaves the level untouched. Cells outside the
// grid or never written block like walls. A keeper or merged tile in the
// object grid means the level is corrupt and panics with *InvariantError.
func (e *Engine) Move(delta Point) MoveResult {
	level := e.CurrentLevel()
	if e.complete || level == nil {
		return MoveResult{Outcome: OutcomeIgnored, GameComplete: e.complete}
	}

	keeper := level.KeeperPosition()
	keeperTile, err := level.ObjectAt(keeper)
	if err != nil {
		e.fail(&InvariantError{Tile: TileNone, Point: keeper})
	}
	target := Translate(keeper, delta)
	targetTile, err := level.ObjectAt(target)
	if err != nil {
		targetTile = TileNone
	}

	if e.debug {
		e.logger.Debug("move",
			"keeper", keeper,
			"source", keeperTile,
			"target", targetTile,
			"at", target,
			"state", "\n"+level.String(),
		)
	}

	result := MoveResult{Outcome: OutcomeBlocked, Level: level}

	switch targetTile {
	case TileWall, TileNone:
		// blocked

	case TileCrate:
		beyond, err := level.TargetObject(target, delta)
		if err != nil || beyond != TileFloor {
			break
		}
		e.relocate(level, TileCrate, target, delta)
		e.relocate(level, keeperTile, keeper, delta)
		result.Outcome = OutcomePushed

	case TileFloor:
		e.relocate(level, keeperTile, keeper, delta)
		result.Outcome = OutcomeWalked

	default:
		e.fail(&InvariantError{Tile: targetTile, Point: target})
	}

	if !result.Moved() {
		result.LevelMoves = e.levelMoves
		return result
	}

	level.setKeeper(target)
	e.moves++
	e.levelMoves++
	result.LevelMoves = e.levelMoves

	if level.IsComplete() {
		result.LevelComplete = true
		e.logger.Info("level complete", "index", level.Index(), "name", level.Name(), "moves", e.levelMoves)
		e.enter(e.current + 1)
	}
	result.GameComplete = e.complete
	return result
}

// relocate moves a tile whose destination was already checked; a failure
// here means the checks and the grid disagree.
func (e *Engine) relocate(level *Level, t Tile, source, delta Point) {
	if err := level.MoveObjectBy(t, source, delta); err != nil {
		e.fail(fmt.Errorf("sokoban: relocating %s from %s: %w", t, source, err))
	}
}

func (e *Engine) fail(err error) {
	e.logger.Error("move resolution hit an impossible state", "error", err)
	panic(err)
}
