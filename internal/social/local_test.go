package social

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "social.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newLocal(t *testing.T, store *storage.Store, player Player) *Local {
	t.Helper()
	l := NewLocal(store, player, log.New(io.Discard))
	t.Cleanup(l.Close)
	return l
}

// wait blocks until a completion arrives or fails the test.
func wait[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("completion not delivered")
		var zero T
		return zero
	}
}

func TestLocalReportAndLoad(t *testing.T) {
	store := openStore(t)
	alice := newLocal(t, store, Player{ID: "a", Name: "alice"})
	bob := newLocal(t, store, Player{ID: "b", Name: "bob"})

	oks := make(chan bool, 4)
	alice.Authenticate(func(ok bool) { oks <- ok })
	alice.ReportScore(core.BoardHighScores, 40, func(ok bool) { oks <- ok })
	bob.ReportScore(core.BoardHighScores, 90, func(ok bool) { oks <- ok })
	alice.ReportScore(core.BoardHighScores, 20, func(ok bool) { oks <- ok })
	for range 4 {
		if !wait(t, oks) {
			t.Fatal("report failed")
		}
	}

	type result struct {
		score core.LocalScore
		ok    bool
	}
	scores := make(chan result, 1)
	alice.LoadLocalScore(core.BoardHighScores, func(s core.LocalScore, ok bool) {
		scores <- result{s, ok}
	})
	got := wait(t, scores)
	if !got.ok || got.score != (core.LocalScore{Rank: 2, Value: 40}) {
		t.Errorf("LoadLocalScore() = %+v, expected rank 2 with 40", got)
	}

	alice.LoadLocalScore(core.BoardHighLevels, func(s core.LocalScore, ok bool) {
		scores <- result{s, ok}
	})
	if got := wait(t, scores); !got.ok || got.score.Rank != 0 {
		t.Errorf("empty board = %+v, expected ok with rank 0", got)
	}

	entries, err := store.TopScores(core.BoardHighScores, 10)
	if err != nil || len(entries) != 2 || entries[1].PlayerName != "alice" {
		t.Errorf("TopScores() = %+v, %v", entries, err)
	}
}

func TestLocalReportProgress(t *testing.T) {
	store := openStore(t)
	l := newLocal(t, store, Player{ID: "a", Name: "alice"})

	done := make(chan bool, 1)
	l.ReportProgress(core.AchievementHero, 30, func(ok bool) { done <- ok })
	if !wait(t, done) {
		t.Fatal("ReportProgress failed")
	}

	list, err := store.Achievements("a")
	if err != nil || len(list) != 1 || list[0].Percent != 30 {
		t.Errorf("Achievements() = %+v, %v", list, err)
	}
}

func TestLocalFailureReportsNotOK(t *testing.T) {
	store := openStore(t)
	l := newLocal(t, store, Player{ID: "a", Name: "alice"})
	store.Close()

	done := make(chan bool, 1)
	l.ReportScore(core.BoardHighScores, 1, func(ok bool) { done <- ok })
	if wait(t, done) {
		t.Error("report on a closed store should fail")
	}
}

func TestLocalShowBoards(t *testing.T) {
	l := newLocal(t, openStore(t), Player{ID: "a"})
	l.ShowBoards() // no handler

	shown := 0
	l.OnShowBoards(func() { shown++ })
	l.ShowBoards()
	if shown != 1 {
		t.Errorf("handler called %d times, expected 1", shown)
	}
}

func TestLocalPlayerPersistsID(t *testing.T) {
	store := openStore(t)

	first, err := LocalPlayer(store, "me")
	if err != nil {
		t.Fatalf("LocalPlayer() failed: %v", err)
	}
	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("player id %q is not a uuid", first.ID)
	}

	second, err := LocalPlayer(store, "me again")
	if err != nil {
		t.Fatalf("LocalPlayer() failed: %v", err)
	}
	if second.ID != first.ID || second.Name != "me again" {
		t.Errorf("second = %+v, expected id %s", second, first.ID)
	}
}

func TestRemotePlayer(t *testing.T) {
	a, b := RemotePlayer("alice"), RemotePlayer("alice")
	if a != b {
		t.Error("same user should map to the same player")
	}
	if RemotePlayer("bob").ID == a.ID {
		t.Error("different users should get different ids")
	}
	if RemotePlayer("").Name != "anonymous" {
		t.Error("empty user name should become anonymous")
	}
}
