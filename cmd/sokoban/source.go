package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// resolveSource picks the map set named on the command line, or the
// configured one when args is empty.
func resolveSource(args []string) levels.Source {
	ref := appConfig.Levels.Set
	if len(args) > 0 {
		ref = args[0]
	}

	src, err := levels.Resolve(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban sets' to see available map sets.")
		os.Exit(1)
	}
	return src
}

// loadEngine opens src and loads it into a fresh engine.
func loadEngine(src levels.Source) (*sokoban.Engine, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	engine := sokoban.NewEngine(sokoban.Options{Debug: appConfig.Debug, Logger: logger})
	if err := engine.Load(rc); err != nil {
		return nil, err
	}
	return engine, nil
}

// openStore opens the results database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		return nil
	}
	return store
}
