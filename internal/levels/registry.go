// Package levels is the catalog of map sets. Built-in sets are embedded and
// register themselves at init; external sets are plain level files on disk.
package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Extension is the file suffix of level files.
const Extension = ".skb"

//go:embed sets/*.skb
var builtin embed.FS

// SetInfo describes a map set without keeping its levels around.
type SetInfo struct {
	ID     string
	Title  string
	Levels int
	Path   string // empty for embedded sets
}

var (
	sets = make(map[string][]byte)
	info = make(map[string]SetInfo)
	mu   sync.RWMutex
)

func init() {
	entries, err := builtin.ReadDir("sets")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded sets: %v", err))
	}
	for _, e := range entries {
		data, err := builtin.ReadFile(path.Join("sets", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("levels: reading embedded set %s: %v", e.Name(), err))
		}
		Register(strings.TrimSuffix(e.Name(), Extension), "", data)
	}
}

// Register adds a map set under id. An empty title is taken from the
// set's MapSetName header. Panics if the id is already registered.
func Register(id, title string, data []byte) {
	set, err := sokoban.ParseLevels(bytes.NewReader(data), nil)
	if err != nil {
		panic(fmt.Sprintf("levels: set %q: %v", id, err))
	}
	if title == "" {
		title = set.Name
	}
	if title == "" {
		title = id
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := sets[id]; exists {
		panic(fmt.Sprintf("levels: set %q already registered", id))
	}

	sets[id] = data
	info[id] = SetInfo{
		ID:     id,
		Title:  title,
		Levels: len(set.Levels),
	}
}

// List returns all registered sets, sorted by ID.
func List() []SetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SetInfo, 0, len(info))
	for _, si := range info {
		result = append(result, si)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open returns a reader over a registered set's level data.
func Open(id string) (io.ReadCloser, error) {
	mu.RLock()
	defer mu.RUnlock()

	data, ok := sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Exists checks if a set with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := sets[id]
	return ok
}
