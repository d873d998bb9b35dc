package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

func openTemp(t *testing.T) *Store {
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

func TestStoreReopenKeepsSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateSession(Meta{GameID: "tetris", Seed: 1, Rows: 16, Cols: 42}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions after reopen, expected 1", len(sessions))
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := openTemp(t)

	id, err := store.CreateSession(Meta{GameID: "snake", Seed: -77, Rows: 16, Cols: 42, Config: "display:\n  rows: 16\n"})
	if err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}

	ticks := []TickRecord{
		{Tick: 1, Elapsed: 10*time.Millisecond + 123, Buttons: 0},
		{Tick: 2, Elapsed: 9 * time.Millisecond, Buttons: core.Press(core.ButtonAction)},
		{Tick: 3, Elapsed: 11 * time.Millisecond, Buttons: core.Press(core.ButtonLeft, core.ButtonUp)},
	}
	if err := store.AppendTicks(id, ticks[:2]); err != nil {
		t.Fatalf("AppendTicks() failed: %v", err)
	}
	if err := store.AppendTicks(id, ticks[2:]); err != nil {
		t.Fatalf("AppendTicks() failed: %v", err)
	}
	if err := store.FinishSession(id, 3, "GameOver"); err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	info, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if info.GameID != "snake" || info.Seed != -77 || info.Rows != 16 || info.Cols != 42 {
		t.Errorf("Session() = %+v", info)
	}
	if info.Config != "display:\n  rows: 16\n" {
		t.Errorf("Config = %q", info.Config)
	}
	if info.Ticks != 3 || info.FinalState != "GameOver" {
		t.Errorf("Ticks = %d, FinalState = %q", info.Ticks, info.FinalState)
	}
	if info.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	got, err := store.Ticks(id)
	if err != nil {
		t.Fatalf("Ticks() failed: %v", err)
	}
	if len(got) != len(ticks) {
		t.Fatalf("got %d ticks, expected %d", len(got), len(ticks))
	}
	for i := range ticks {
		if got[i] != ticks[i] {
			t.Errorf("tick %d = %+v, expected %+v", i, got[i], ticks[i])
		}
	}
}

func TestSessionsNewestFirst(t *testing.T) {
	store := openTemp(t)
	for _, game := range []string{"tetris", "snake", "menu"} {
		if _, err := store.CreateSession(Meta{GameID: game, Rows: 16, Cols: 42}); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := store.Sessions(2)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, expected 2", len(sessions))
	}
	if sessions[0].GameID != "menu" || sessions[1].GameID != "snake" {
		t.Errorf("order = %s, %s", sessions[0].GameID, sessions[1].GameID)
	}
}

func TestNotFound(t *testing.T) {
	store := openTemp(t)

	if _, err := store.Session(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session(99) error = %v, expected ErrNotFound", err)
	}
	if err := store.FinishSession(99, 1, "Start"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FinishSession(99) error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteSession(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSession(99) error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTemp(t)
	id, _ := store.CreateSession(Meta{GameID: "tetris", Seed: 1, Rows: 16, Cols: 42})
	if err := store.AppendTicks(id, []TickRecord{{Tick: 1, Elapsed: time.Millisecond}}); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	if _, err := store.Session(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("session still present: %v", err)
	}
	ticks, err := store.Ticks(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 0 {
		t.Errorf("%d ticks left after delete", len(ticks))
	}
}

func TestDuplicateTickRejected(t *testing.T) {
	store := openTemp(t)
	id, _ := store.CreateSession(Meta{GameID: "tetris", Seed: 1, Rows: 16, Cols: 42})
	dup := []TickRecord{{Tick: 1}, {Tick: 1}}
	if err := store.AppendTicks(id, dup); err == nil {
		t.Fatal("expected primary key violation")
	}
	// The failed batch is rolled back as a whole.
	ticks, _ := store.Ticks(id)
	if len(ticks) != 0 {
		t.Errorf("%d ticks kept from failed batch", len(ticks))
	}
}

func TestJournalBatches(t *testing.T) {
	store := openTemp(t)
	j, err := store.NewJournal(Meta{GameID: "tetris", Seed: 5, Rows: 16, Cols: 42}, 3)
	if err != nil {
		t.Fatalf("NewJournal() failed: %v", err)
	}

	for i := uint64(1); i <= 4; i++ {
		if err := j.Record(i, time.Duration(i)*time.Millisecond, core.Press(core.ButtonDown)); err != nil {
			t.Fatalf("Record(%d) failed: %v", i, err)
		}
	}

	// Three ticks written, one still buffered.
	ticks, _ := store.Ticks(j.ID())
	if len(ticks) != 3 {
		t.Errorf("got %d ticks before Close, expected 3", len(ticks))
	}

	if err := j.Close(core.StatePlaying); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	ticks, _ = store.Ticks(j.ID())
	if len(ticks) != 4 {
		t.Errorf("got %d ticks after Close, expected 4", len(ticks))
	}
	info, _ := store.Session(j.ID())
	if info.Ticks != 4 || info.FinalState != "Playing" {
		t.Errorf("session = %+v", info)
	}
}
