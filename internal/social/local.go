// Package social implements the leaderboard and achievement service on top
// of the local SQLite store.
package social

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

// Local is a core.Leaderboard backed by a storage.Store. Every call runs
// on its own goroutine and reports through its completion callback from
// that goroutine.
type Local struct {
	store  *storage.Store
	player Player
	logger *log.Logger

	mu     sync.Mutex
	onShow func()

	wg sync.WaitGroup
}

// NewLocal creates a leaderboard service for player.
func NewLocal(store *storage.Store, player Player, logger *log.Logger) *Local {
	return &Local{
		store:  store,
		player: player,
		logger: logger.With("player", player.Name),
	}
}

// Player returns the identity scores are reported under.
func (l *Local) Player() Player {
	return l.player
}

// OnShowBoards sets the handler called when the game asks to show the
// leaderboards.
func (l *Local) OnShowBoards(fn func()) {
	l.mu.Lock()
	l.onShow = fn
	l.mu.Unlock()
}

// Close waits for every pending call to complete.
func (l *Local) Close() {
	l.wg.Wait()
}

func (l *Local) run(op string, fn func() error, done func(ok bool)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		err := fn()
		if err != nil {
			l.logger.Warn("leaderboard call failed", "op", op, "err", err)
		}
		if done != nil {
			done(err == nil)
		}
	}()
}

// Authenticate registers the player.
func (l *Local) Authenticate(done func(ok bool)) {
	l.run("authenticate", func() error {
		return l.store.EnsurePlayer(l.player.ID, l.player.Name)
	}, done)
}

// ReportScore records value on board.
func (l *Local) ReportScore(board string, value int64, done func(ok bool)) {
	l.run("report score", func() error {
		_, err := l.store.SaveScore(board, l.player.ID, value)
		if err == nil {
			l.logger.Debug("score reported", "board", board, "value", value)
		}
		return err
	}, done)
}

// LoadLocalScore loads the rank and best value of the player on board.
// A player without a score gets rank 0.
func (l *Local) LoadLocalScore(board string, done func(score core.LocalScore, ok bool)) {
	var score core.LocalScore
	l.run("load score", func() error {
		value, rank, found, err := l.store.PlayerBest(board, l.player.ID)
		if err != nil {
			return err
		}
		if found {
			score = core.LocalScore{Rank: rank, Value: value}
		}
		return nil
	}, func(ok bool) {
		if done != nil {
			done(score, ok)
		}
	})
}

// ReportProgress records achievement progress in percent.
func (l *Local) ReportProgress(achievement string, percent float64, done func(ok bool)) {
	l.run("report progress", func() error {
		return l.store.ReportProgress(l.player.ID, achievement, percent)
	}, done)
}

// ShowBoards calls the handler set by OnShowBoards.
func (l *Local) ShowBoards() {
	l.mu.Lock()
	fn := l.onShow
	l.mu.Unlock()
	if fn != nil {
		fn()
	}
}

var _ core.Leaderboard = (*Local)(nil)
