package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var flagScanDir string

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List available map sets",
	Long: `Shows the built-in map sets and the level files (*.skb) found in the
levels directory from the configuration or --dir.`,
	Args: cobra.NoArgs,
	Run:  runSets,
}

func init() {
	setsCmd.Flags().StringVar(&flagScanDir, "dir", "", "Directory to scan for level files (overrides config)")
}

func runSets(_ *cobra.Command, _ []string) {
	sets := levels.List()

	dir := appConfig.Levels.Dir
	if flagScanDir != "" {
		dir = flagScanDir
	}
	if dir != "" {
		found, err := levels.Scan(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		sets = append(sets, found...)
	}

	// File sets are played by path
	refs := make([]string, len(sets))
	maxIDLen := 2 // "ID" header
	for i, s := range sets {
		refs[i] = s.ID
		if s.Path != "" {
			refs[i] = s.Path
		}
		maxIDLen = max(maxIDLen, len(refs[i]))
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for i, s := range sets {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, refs[i], s.Levels, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a set.")
}
