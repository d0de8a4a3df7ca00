package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// ErrNotFound is returned when a reference names neither a registered set
// nor a readable file.
var ErrNotFound = errors.New("levels: set not found")

// Source is a resolved map set: something the engine can load from and
// reload later.
type Source struct {
	ID   string // registered id, or the file path for external sets
	Path string // empty for embedded sets
}

// Embedded reports whether the source is a built-in set.
func (s Source) Embedded() bool {
	return s.Path == ""
}

// Open returns a fresh reader over the set.
func (s Source) Open() (io.ReadCloser, error) {
	if s.Embedded() {
		return Open(s.ID)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("levels: opening %s: %w", s.Path, err)
	}
	return f, nil
}

// Resolve turns a set id or a level file path into a Source.
// Registered ids win over files of the same name.
func Resolve(ref string) (Source, error) {
	if Exists(ref) {
		return Source{ID: ref}, nil
	}

	st, err := os.Stat(ref)
	if err != nil || st.IsDir() {
		return Source{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return Source{ID: ref, Path: ref}, nil
}

// Scan recursively walks dir for level files and describes each set found.
// Files that cannot be read are skipped. Results are sorted by ID.
func Scan(dir string) ([]SetInfo, error) {
	var result []SetInfo

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != Extension {
			return nil
		}

		si, err := describe(dir, path)
		if err != nil {
			return nil
		}

		result = append(result, si)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", dir, err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func describe(root, path string) (SetInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return SetInfo{}, err
	}
	defer f.Close()

	set, err := sokoban.ParseLevels(f, nil)
	if err != nil {
		return SetInfo{}, err
	}

	id, err := filepath.Rel(root, path)
	if err != nil {
		id = filepath.Base(path)
	}
	id = filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))

	title := set.Name
	if title == "" {
		title = id
	}

	return SetInfo{
		ID:     id,
		Title:  title,
		Levels: len(set.Levels),
		Path:   path,
	}, nil
}
