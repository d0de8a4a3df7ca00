package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []sokoban.Direction
		wantErr  bool
	}{
		{"empty", "", nil, false},
		{"letters", "rrdl", []sokoban.Direction{sokoban.DirRight, sokoban.DirRight, sokoban.DirDown, sokoban.DirLeft}, false},
		{"upper letters", "UL", []sokoban.Direction{sokoban.DirUp, sokoban.DirLeft}, false},
		{"single name", "down", []sokoban.Direction{sokoban.DirDown}, false},
		{"names", "right, down up", []sokoban.Direction{sokoban.DirRight, sokoban.DirDown, sokoban.DirUp}, false},
		{"bad letter", "rx", nil, true},
		{"bad name", "right,sideways", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMoves(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseMoves(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("parseMoves(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("move %d = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestReplay(t *testing.T) {
	load := func(t *testing.T) *sokoban.Engine {
		t.Helper()
		e := sokoban.NewEngine(sokoban.Options{})
		if err := e.Load(strings.NewReader("LevelName: R\nWWWWWW\nWS CDW\nWWWWWW\n")); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		return e
	}

	out := replay(load(t), []sokoban.Direction{sokoban.DirRight})
	if !strings.Contains(out, "total moves: 1") || !strings.Contains(out, "W SCDW") {
		t.Errorf("partial replay report:\n%s", out)
	}

	dirs, _ := parseMoves("rrr")
	out = replay(load(t), dirs)
	for _, want := range []string{`level 1 "R" solved in 2 moves`, "ignored, 0 moves left", "all levels solved"} {
		if !strings.Contains(out, want) {
			t.Errorf("full replay report missing %q:\n%s", want, out)
		}
	}
}

func TestLoadEngine(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.skb")
	if err := os.WriteFile(good, []byte("MapSetName: Two\nLevelName: a\nWWWWW\nWSCDW\nWWWWW\nLevelName: b\nWWWWWW\nWS CDW\nWWWWWW\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine, err := loadEngine(levels.Source{ID: good, Path: good})
	if err != nil {
		t.Fatalf("loadEngine() failed: %v", err)
	}
	if engine.MapSetName() != "Two" || len(engine.Levels()) != 2 {
		t.Errorf("loaded %q with %d levels, expected Two with 2", engine.MapSetName(), len(engine.Levels()))
	}

	missing := filepath.Join(dir, "missing.skb")
	if _, err := loadEngine(levels.Source{ID: missing, Path: missing}); err == nil {
		t.Error("loadEngine() of a missing file should fail")
	}
}
