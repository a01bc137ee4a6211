package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
)

// Intermission is a core.Ads that plays a timed intermission screen in
// place of an ad. It reports AdFinished when the time runs out and
// AdSkipped when the player skips it.
type Intermission struct {
	enabled  bool
	duration time.Duration
	logger   *log.Logger
	now      func() time.Time

	mu    sync.Mutex
	start time.Time
	done  func(core.AdResult)
	timer *time.Timer
}

// NewIntermission creates the intermission service from the ads config.
func NewIntermission(cfg config.AdsConfig, logger *log.Logger) *Intermission {
	return &Intermission{
		enabled:  cfg.Enabled,
		duration: time.Duration(cfg.Duration * float64(time.Second)),
		logger:   logger,
		now:      time.Now,
	}
}

// Showing reports whether an intermission is on screen.
func (i *Intermission) Showing() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.done != nil
}

// Ready reports whether an intermission can be shown.
func (i *Intermission) Ready() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.enabled && i.done == nil
}

// Show starts an intermission. done is called from the timer goroutine.
func (i *Intermission) Show(done func(core.AdResult)) {
	i.mu.Lock()
	if !i.enabled || i.done != nil {
		i.mu.Unlock()
		done(core.AdFailed)
		return
	}
	i.start = i.now()
	i.done = done
	i.timer = time.AfterFunc(i.duration, func() { i.finish(core.AdFinished) })
	i.mu.Unlock()
	i.logger.Debug("intermission started", "duration", i.duration)
}

// Skip ends the intermission early.
func (i *Intermission) Skip() {
	i.finish(core.AdSkipped)
}

// Close stops a running intermission without reporting a result.
func (i *Intermission) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.timer != nil {
		i.timer.Stop()
	}
	i.done = nil
}

func (i *Intermission) finish(result core.AdResult) {
	i.mu.Lock()
	done := i.done
	i.done = nil
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.mu.Unlock()

	if done == nil {
		return
	}
	i.logger.Debug("intermission ended", "result", result)
	done(result)
}

// Remaining returns the time left on the running intermission.
func (i *Intermission) Remaining() time.Duration {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.done == nil {
		return 0
	}
	return max(i.duration-i.now().Sub(i.start), 0)
}

var _ core.Ads = (*Intermission)(nil)
