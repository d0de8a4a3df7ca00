package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay [set|file]",
	Short: "Run a move string against a map set",
	Long: `Feeds a sequence of moves to the engine without a UI and prints the
board afterwards. Moves are the letters u, r, d, l written together
("rrdl") or direction names separated by spaces or commas ("right,down").
Use --debug to trace every move into the log.

Examples:
  sokoban replay debug --moves rr
  sokoban replay classic --moves "right right" --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play")
}

func runReplay(_ *cobra.Command, args []string) {
	dirs, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	engine, err := loadEngine(resolveSource(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Print(replay(engine, dirs))
}

// replay applies dirs to engine and returns a printable report.
func replay(engine *sokoban.Engine, dirs []sokoban.Direction) string {
	var sb strings.Builder

	for i, d := range dirs {
		res := engine.HandleDirection(d)
		if res.LevelComplete {
			fmt.Fprintf(&sb, "move %d: level %d %q solved in %d moves\n",
				i+1, res.Level.Index(), res.Level.Name(), res.LevelMoves)
		}
		if res.Outcome == sokoban.OutcomeIgnored {
			fmt.Fprintf(&sb, "move %d: ignored, %d moves left unplayed\n", i+1, len(dirs)-i-1)
			break
		}
	}

	fmt.Fprintf(&sb, "total moves: %d\n", engine.MovesCount())
	if engine.IsGameComplete() {
		sb.WriteString("all levels solved\n")
		return sb.String()
	}

	level := engine.CurrentLevel()
	if level == nil {
		sb.WriteString("no levels\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "level %d %q: %d moves, %d/%d diamonds covered\n\n",
		level.Index(), level.Name(), engine.LevelMoves(), level.CratesOnDiamonds(), level.Diamonds())
	sb.WriteString(level.Render())
	return sb.String()
}

// parseMoves reads "rrdl" or "right, down up" into directions.
func parseMoves(s string) ([]sokoban.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	if strings.ContainsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		tokens = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	} else if len(s) > 1 && !isDirectionName(s) {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	} else {
		tokens = []string{s}
	}

	dirs := make([]sokoban.Direction, 0, len(tokens))
	for _, tok := range tokens {
		d, err := sokoban.ParseDirection(tok)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

func isDirectionName(s string) bool {
	switch strings.ToLower(s) {
	case "up", "right", "down", "left":
		return true
	}
	return false
}
