package sokoban

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	mapSetNameKey = "MapSetName"
	levelNameKey  = "LevelName"
)

// MapSet is the parsed content of a level file.
type MapSet struct {
	Name   string
	Levels []*Level
}

// ParseLevels reads a level file.
//
// A line containing MapSetName names the set and a line containing LevelName
// starts a new level. Any other line that holds at least two walls once
// trimmed and upper-cased is a grid row of the current level. Levels are
// numbered from 1 in the order they appear. Levels that cannot be built are
// logged and skipped; only a read failure is returned as an error, together
// with whatever was parsed before it.
func ParseLevels(r io.Reader, logger Logger) (MapSet, error) {
	logger = orDiscard(logger)

	var (
		set       MapSet
		index     int
		name      string
		rows      []string
		seenFirst bool
	)

	flush := func() {
		index++
		level, err := NewLevel(name, index, rows)
		if err != nil {
			logger.Warn("skipping level", "error", &LevelError{Index: index, Name: name, Err: err})
			return
		}
		logger.Debug("level parsed", "index", index, "name", name,
			"size", fmt.Sprintf("%dx%d", level.Columns(), level.Rows()), "diamonds", level.Diamonds())
		set.Levels = append(set.Levels, level)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if value, ok := headerValue(line, mapSetNameKey); ok {
			set.Name = value
			continue
		}

		if value, ok := headerValue(line, levelNameKey); ok {
			if seenFirst {
				flush()
				rows = nil
			} else {
				seenFirst = true
			}
			name = value
			continue
		}

		line = strings.ToUpper(strings.TrimSpace(line))
		if isGridRow(line) {
			rows = append(rows, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("sokoban: reading level file: %w", err)
	}

	if len(rows) > 0 {
		flush()
	}

	return set, nil
}

// headerValue returns the text following key and its colon, if line holds key.
func headerValue(line, key string) (string, bool) {
	_, after, ok := strings.Cut(line, key)
	if !ok {
		return "", false
	}
	after = strings.TrimPrefix(after, ":")
	return strings.TrimSpace(after), true
}

// isGridRow rejects blank and decorative lines: a row needs at least a left
// and a right boundary wall.
func isGridRow(line string) bool {
	return strings.Count(line, string(tileSymbols[TileWall])) >= 2
}
