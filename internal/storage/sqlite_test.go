package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{MapSet: "classic", LevelIndex: 1, Moves: 12}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, ok, err := store.LevelBest("classic", 1)
	if err != nil || !ok || best != 12 {
		t.Errorf("LevelBest() = %d, %v, %v; expected 12 after reopen", best, ok, err)
	}
}

func TestStoreSaveResultRunID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{MapSet: "classic", LevelIndex: 1, LevelName: "Warm Up", Moves: 3})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, expected positive", id)
	}

	recent, err := store.RecentResults(1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("RecentResults() = %v, %v", recent, err)
	}
	if _, err := uuid.Parse(recent[0].RunID); err != nil {
		t.Errorf("generated RunID %q is not a uuid: %v", recent[0].RunID, err)
	}
	if recent[0].LevelName != "Warm Up" {
		t.Errorf("LevelName = %q", recent[0].LevelName)
	}
	if recent[0].CreatedAt.IsZero() || time.Since(recent[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected about now", recent[0].CreatedAt)
	}

	if _, err := store.SaveResult(Result{LevelIndex: 1, Moves: 3}); err == nil {
		t.Error("SaveResult() without a map set should fail")
	}
}

func TestStoreBestResults(t *testing.T) {
	store := openTestStore(t)

	saves := []Result{
		{MapSet: "classic", LevelIndex: 2, LevelName: "Straight Up", Moves: 9},
		{MapSet: "classic", LevelIndex: 1, LevelName: "Warm Up", Moves: 7},
		{MapSet: "classic", LevelIndex: 1, LevelName: "Warm Up", Moves: 4, RunID: "fast"},
		{MapSet: "classic", LevelIndex: 1, LevelName: "Warm Up", Moves: 6},
		{MapSet: "debug", LevelIndex: 1, LevelName: "Debug Level", Moves: 2},
	}
	for _, r := range saves {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	best, err := store.BestResults("classic")
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(best))
	}
	if best[0].LevelIndex != 1 || best[0].Moves != 4 || best[0].RunID != "fast" {
		t.Errorf("best for level 1 = %+v, expected 4 moves from run fast", best[0])
	}
	if best[1].LevelIndex != 2 || best[1].Moves != 9 {
		t.Errorf("best for level 2 = %+v", best[1])
	}

	if empty, _ := store.BestResults("unknown"); len(empty) != 0 {
		t.Errorf("expected no results for unknown set, got %d", len(empty))
	}
}

func TestStoreLevelBestEmpty(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.LevelBest("classic", 1)
	if err != nil {
		t.Fatalf("LevelBest() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("LevelBest() = %d, %v; expected nothing for an empty store", best, ok)
	}
}

func TestStoreRecentAndRunResults(t *testing.T) {
	store := openTestStore(t)
	run := NewRunID()

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveResult(Result{RunID: run, MapSet: "classic", LevelIndex: i, Moves: i * 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	if _, err := store.SaveResult(Result{MapSet: "debug", LevelIndex: 1, Moves: 2}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].MapSet != "debug" || recent[1].LevelIndex != 3 {
		t.Errorf("RecentResults(2) = %+v, expected newest first", recent)
	}

	runResults, err := store.RunResults(run)
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(runResults) != 3 {
		t.Fatalf("RunResults() returned %d, expected 3", len(runResults))
	}
	for i, r := range runResults {
		if r.LevelIndex != i+1 {
			t.Errorf("run result %d level = %d, expected %d", i, r.LevelIndex, i+1)
		}
	}
}

func TestStoreMapSetsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, set := range []string{"debug", "classic", "debug"} {
		if _, err := store.SaveResult(Result{MapSet: set, LevelIndex: 1, Moves: 5}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	sets, err := store.MapSets()
	if err != nil {
		t.Fatalf("MapSets() failed: %v", err)
	}
	if len(sets) != 2 || sets[0] != "classic" || sets[1] != "debug" {
		t.Errorf("MapSets() = %v, expected [classic debug]", sets)
	}

	if err := store.ClearResults("debug"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	if _, ok, _ := store.LevelBest("debug", 1); ok {
		t.Error("debug results should be cleared")
	}
	if _, ok, _ := store.LevelBest("classic", 1); !ok {
		t.Error("ClearResults() should not touch other sets")
	}
}
