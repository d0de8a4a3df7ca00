// sokoban is a terminal sokoban player.
//
// Usage:
//
//	sokoban sets                  - List built-in and scanned map sets
//	sokoban list [set|file]       - List the levels of a map set
//	sokoban play [set|file]       - Play a map set
//	sokoban replay [set|file]     - Replay a move string without a UI
//	sokoban scores [set]          - Show best results
//	sokoban serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.sokoban, ./configs)
//	--db <path>        - Results database path
//	--debug            - Trace every move to the log
//	--log-file <path>  - Log file path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagDebug   bool
	flagLogFile string

	// Set up before every command runs
	appConfig config.Config
	logger    *log.Logger
	closeLog  = func() {}
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push crates onto diamonds in your terminal",
	Long: `Sokoban is a terminal puzzle game: walk the keeper around the
warehouse and push every crate onto a diamond.

Available commands:
  sets     - Show the available map sets
  list     - Show the levels of a map set
  play     - Play a map set
  replay   - Run a move string against a map set
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  sokoban sets
  sokoban play
  sokoban play ./levels/microban.skb
  sokoban scores classic
  sokoban serve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Trace every move to the log")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (overrides config)")

	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration, applies global flags and opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagDebug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	appConfig = cfg

	// The SSH server has no UI of its own and logs to stderr as well.
	l, closer, err := newLogger(cfg.Logging, cmd.Name() == "serve")
	if err != nil {
		return err
	}
	logger = l
	closeLog = closer
	return nil
}
