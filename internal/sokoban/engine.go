package sokoban

import (
	"fmt"
	"io"
	"os"
)

// Options configures an Engine.
type Options struct {
	// Debug enables per-move traces on the logger.
	Debug bool
	// Logger receives load warnings, traces and invariant failures.
	// Nil discards everything.
	Logger Logger
}

// Engine owns the levels of one map set and resolves keeper moves against
// the current level. It is not safe for concurrent use; the host must deliver
// one command at a time.
type Engine struct {
	levels     []*Level
	current    int // position in levels, -1 when there is none
	mapSetName string

	moves      int
	levelMoves int
	complete   bool

	debug  bool
	logger Logger
}

// NewEngine creates an engine with no levels loaded.
func NewEngine(opts Options) *Engine {
	return &Engine{
		current: -1,
		debug:   opts.Debug,
		logger:  orDiscard(opts.Logger),
	}
}

// Load replaces the engine state with the map set read from r and starts
// the first level. On a read failure the error is logged and returned and
// the engine is left with no levels; every query stays answerable.
func (e *Engine) Load(r io.Reader) error {
	set, err := ParseLevels(r, e.logger)
	e.reset()

	if err != nil {
		e.logger.Error("cannot load the level file", "error", err)
		return err
	}

	e.mapSetName = set.Name
	e.levels = set.Levels

	if len(e.levels) == 0 {
		e.logger.Warn("level file holds no playable levels", "map_set", e.mapSetName)
		return nil
	}

	e.logger.Info("map set loaded", "map_set", e.mapSetName, "levels", len(e.levels))
	e.enter(0)
	return nil
}

// LoadFile opens path and loads it.
func (e *Engine) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("sokoban: opening level file: %w", err)
		e.logger.Error("cannot load the level file", "path", path, "error", err)
		e.reset()
		return err
	}
	defer f.Close()
	return e.Load(f)
}

// reset drops the loaded map set and every counter.
func (e *Engine) reset() {
	e.levels = nil
	e.current = -1
	e.mapSetName = ""
	e.moves = 0
	e.levelMoves = 0
	e.complete = false
}

// enter makes the level at position i current. Levels that are already
// complete on arrival are passed over. Running out of levels completes the game.
func (e *Engine) enter(i int) {
	e.levelMoves = 0
	for ; i < len(e.levels); i++ {
		if !e.levels[i].IsComplete() {
			e.current = i
			if e.debug {
				e.logger.Debug("entering level", "index", e.levels[i].Index(), "name", e.levels[i].Name())
			}
			return
		}
		e.logger.Debug("level complete on arrival", "index", e.levels[i].Index(), "name", e.levels[i].Name())
	}

	e.current = -1
	e.complete = true
	e.logger.Info("game complete", "map_set", e.mapSetName, "moves", e.moves)
}

// RestartLevel rebuilds the current level from its source rows.
// The total move count is kept; the per-level count starts over.
func (e *Engine) RestartLevel() bool {
	level := e.CurrentLevel()
	if level == nil {
		return false
	}

	fresh, err := NewLevel(level.Name(), level.Index(), level.Source())
	if err != nil {
		// The rows already built a level once.
		e.logger.Error("cannot rebuild level", "error", err)
		return false
	}

	e.levels[e.current] = fresh
	e.levelMoves = 0
	return true
}

// CurrentLevel returns the level being played, or nil when nothing is
// loaded or the game is complete.
func (e *Engine) CurrentLevel() *Level {
	if e.current < 0 || e.current >= len(e.levels) {
		return nil
	}
	return e.levels[e.current]
}

// LevelNumber returns the 1-based position of the current level, or 0.
func (e *Engine) LevelNumber() int {
	if e.CurrentLevel() == nil {
		return 0
	}
	return e.current + 1
}

// Levels returns the loaded levels.
func (e *Engine) Levels() []*Level {
	return append([]*Level(nil), e.levels...)
}

// MovesCount returns the number of successful moves since the last load.
func (e *Engine) MovesCount() int {
	return e.moves
}

// LevelMoves returns the number of successful moves in the current level.
func (e *Engine) LevelMoves() int {
	return e.levelMoves
}

// MapSetName returns the name declared by the level file.
func (e *Engine) MapSetName() string {
	return e.mapSetName
}

// IsGameComplete reports whether every level has been solved.
// Once true it stays true until the next load.
func (e *Engine) IsGameComplete() bool {
	return e.complete
}

// ToggleDebug flips per-move tracing and returns the new setting.
func (e *Engine) ToggleDebug() bool {
	e.debug = !e.debug
	e.logger.Info("debug mode", "enabled", e.debug)
	return e.debug
}

// Debug reports whether per-move tracing is on.
func (e *Engine) Debug() bool {
	return e.debug
}
