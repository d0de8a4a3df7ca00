package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [set|file]",
	Short: "Play a map set",
	Long: `Play a built-in map set or a level file. Without an argument the
set from the configuration is played (default: classic).

Controls:
  Arrows/hjkl  - Move the keeper
  R            - Restart the current level
  Ctrl+R       - Reload the map set
  D            - Toggle debug tracing
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Solved levels are recorded in the results database.

Examples:
  sokoban play
  sokoban play debug
  sokoban play ./my-levels.skb --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	src := resolveSource(args)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()

	runErr := tui.Run(tui.PlayOptions{
		Source:  src,
		Store:   store,
		Palette: tui.NewPalette(appConfig.Theme),
		Config:  core.RuntimeConfig{ScreenW: width, ScreenH: height},
		Logger:  logger,
		Debug:   appConfig.Debug,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
