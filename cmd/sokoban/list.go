package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRender bool

var listCmd = &cobra.Command{
	Use:   "list [set|file]",
	Short: "List the levels of a map set",
	Long: `Shows every playable level of a map set with its size and number
of diamonds. Levels that fail to load are reported in the log and skipped.

Examples:
  sokoban list
  sokoban list classic --render
  sokoban list ./my-levels.skb`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagRender, "render", false, "Draw each level")
}

func runList(_ *cobra.Command, args []string) {
	src := resolveSource(args)

	engine, err := loadEngine(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	title := engine.MapSetName()
	if title == "" {
		title = src.ID
	}
	fmt.Printf("%s\n\n", title)

	levelList := engine.Levels()
	if len(levelList) == 0 {
		fmt.Println("No playable levels.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-24s  %-7s  %s\n", "#", "Name", "Size", "Diamonds")
	fmt.Printf("  %-4s  %-24s  %-7s  %s\n", "-", "----", "----", "--------")

	for _, l := range levelList {
		size := fmt.Sprintf("%dx%d", l.Columns(), l.Rows())
		fmt.Printf("  %-4d  %-24s  %-7s  %d\n", l.Index(), l.Name(), size, l.Diamonds())
		if flagRender {
			fmt.Println()
			fmt.Print(l.Render())
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf("Run 'sokoban play %s' to play.\n", src.ID)
}
