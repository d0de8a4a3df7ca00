package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
	flagRun    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [set]",
	Short: "Show best results",
	Long: `Display the fewest moves recorded for every solved level of a map set.
On a terminal the interactive scoreboard opens; when output is piped a
plain table is printed.

Examples:
  sokoban scores
  sokoban scores classic
  sokoban scores --recent 20
  sokoban scores --run 0f8c2c3e-5b1d-4a53-9d0e-7b6f1d2a9c41
  sokoban scores debug --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the set")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Print the N most recent results of all sets")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Print the results of one play session")
}

func runScores(_ *cobra.Command, args []string) {
	setID := appConfig.Levels.Set
	if len(args) > 0 {
		setID = args[0]
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(setID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared results for %s.\n", setID)

	case flagRecent > 0:
		printRecent(store, flagRecent)

	case flagRun != "":
		if err := printRun(os.Stdout, store, flagRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		}

	case term.IsTerminal(int(os.Stdout.Fd())):
		width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
		if termErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, setID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		printBest(store, setID)
	}
}

func printBest(store *storage.Store, setID string) {
	results, err := store.BestResults(setID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Best Results - %s\n", setID)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to record the first result!\n", setID)
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-24s  %-6s  %s\n", "Level", "Name", "Moves", "Date")
	fmt.Printf("  %-5s  %-24s  %-6s  %s\n", "-----", "----", "-----", "----")

	total := 0
	for _, r := range results {
		fmt.Printf("  %-5d  %-24s  %-6d  %s\n", r.LevelIndex, r.LevelName, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
		total += r.Moves
	}

	fmt.Println()
	fmt.Printf("Solved: %d   Total moves: %d\n", len(results), total)
}

func printRecent(store *storage.Store, limit int) {
	results, err := store.RecentResults(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-6s  %-16s  %s\n", "Set", "Level", "Moves", "Date", "Run")
	fmt.Printf("  %-16s  %-5s  %-6s  %-16s  %s\n", "---", "-----", "-----", "----", "---")
	for _, r := range results {
		fmt.Printf("  %-16s  %-5d  %-6d  %-16s  %s\n", r.MapSet, r.LevelIndex, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
}

// printRun writes every level solved during one play session.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	results, err := store.RunResults(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s\n\n", runID)
	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded for this run.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-24s  %s\n", "Set", "Level", "Name", "Moves")
	fmt.Fprintf(w, "  %-16s  %-5s  %-24s  %s\n", "---", "-----", "----", "-----")

	total := 0
	for _, r := range results {
		fmt.Fprintf(w, "  %-16s  %-5d  %-24s  %d\n", r.MapSet, r.LevelIndex, r.LevelName, r.Moves)
		total += r.Moves
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Solved: %d   Total moves: %d\n", len(results), total)
	return nil
}
