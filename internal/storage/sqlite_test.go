package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndLoadSlot(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSlot("alice", `{"coins":10}`); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}

	data, err := store.LoadSlot("alice")
	if err != nil {
		t.Fatalf("LoadSlot() failed: %v", err)
	}
	if data != `{"coins":10}` {
		t.Errorf("LoadSlot() = %q, expected saved data", data)
	}
}

func TestSaveSlotUpserts(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSlot("alice", `{"coins":10}`); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}
	if err := store.SaveSlot("alice", `{"coins":25}`); err != nil {
		t.Fatalf("second SaveSlot() failed: %v", err)
	}

	data, err := store.LoadSlot("alice")
	if err != nil {
		t.Fatalf("LoadSlot() failed: %v", err)
	}
	if data != `{"coins":25}` {
		t.Errorf("LoadSlot() = %q, expected the latest save", data)
	}
}

func TestLoadSlotMissing(t *testing.T) {
	store := openTestStore(t)

	data, err := store.LoadSlot("ghost")
	if err != nil {
		t.Fatalf("LoadSlot() on missing slot errored: %v", err)
	}
	if data != "" {
		t.Errorf("LoadSlot() = %q, expected empty for a missing slot", data)
	}
}

func TestDeleteSlot(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSlot("alice", `{"coins":10}`); err != nil {
		t.Fatalf("SaveSlot() failed: %v", err)
	}
	if _, err := store.RecordRun(RunEntry{Slot: "alice", Coins: 10}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	if err := store.DeleteSlot("alice"); err != nil {
		t.Fatalf("DeleteSlot() failed: %v", err)
	}

	data, err := store.LoadSlot("alice")
	if err != nil || data != "" {
		t.Errorf("slot survived deletion: data=%q err=%v", data, err)
	}
	runs, err := store.RecentRuns("alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("run history survived deletion: %d runs", len(runs))
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store := openTestStore(t)

	entries := []RunEntry{
		{Slot: "alice", Coins: 10, Raiders: 5, Duration: 60},
		{Slot: "alice", Coins: 30, Raiders: 12, Duration: 180},
		{Slot: "alice", Coins: 20, Raiders: 8, Duration: 120},
		{Slot: "bob", Coins: 99, Raiders: 40, Duration: 300},
	}
	for _, e := range entries {
		if _, err := store.RecordRun(e); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs for alice, expected 3", len(runs))
	}
	for _, r := range runs {
		if r.Slot != "alice" {
			t.Errorf("run for slot %q leaked into alice's history", r.Slot)
		}
	}

	best, err := store.BestRun("alice")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Coins != 30 {
		t.Errorf("BestRun() = %+v, expected the 30-coin run", best)
	}
}

func TestBestRunEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("ghost")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestRun() = %+v, expected nil for an empty slot", best)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.RecordRun(RunEntry{Slot: "alice", Coins: i}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("alice", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, expected the limit of 2", len(runs))
	}
}

func TestGetSlotStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetSlotStats("ghost")
	if err != nil {
		t.Fatalf("GetSlotStats() on empty slot failed: %v", err)
	}
	if stats.RunCount != 0 || stats.BestCoins != 0 {
		t.Errorf("empty slot stats = %+v, expected zeros", stats)
	}

	runs := []RunEntry{
		{Slot: "alice", Coins: 10, Raiders: 4},
		{Slot: "alice", Coins: 20, Raiders: 6},
	}
	for _, e := range runs {
		if _, err := store.RecordRun(e); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	stats, err = store.GetSlotStats("alice")
	if err != nil {
		t.Fatalf("GetSlotStats() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, expected 2", stats.RunCount)
	}
	if stats.BestCoins != 20 {
		t.Errorf("BestCoins = %d, expected 20", stats.BestCoins)
	}
	if stats.AvgCoins != 15 {
		t.Errorf("AvgCoins = %v, expected 15", stats.AvgCoins)
	}
	if stats.TotalKills != 10 {
		t.Errorf("TotalKills = %d, expected 10", stats.TotalKills)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after recorded runs")
	}
}
