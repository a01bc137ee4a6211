package tui

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestAudioEffects(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	a := NewAudio(log.New(io.Discard))
	a.now = clock.Now

	a.SetMusic("Neon Lobby")
	a.PlayOnce(core.SoundDing)
	if !a.EffectPlaying() {
		t.Fatal("ding should be playing")
	}
	track, effect, playing := a.Status()
	if track != "Neon Lobby" || effect != core.SoundDing || !playing {
		t.Errorf("Status() = %q, %v, %v", track, effect, playing)
	}

	clock.Advance(time.Second)
	if a.EffectPlaying() {
		t.Error("one-shot effect should have ended")
	}

	a.PlayLoop(core.SoundAlarm)
	clock.Advance(time.Minute)
	if !a.EffectPlaying() {
		t.Error("looping effect should keep playing")
	}
	a.StopEffect()
	if a.EffectPlaying() {
		t.Error("StopEffect should stop the loop")
	}

	a.SetMusic("")
	if track, _, _ := a.Status(); track != "" {
		t.Errorf("track = %q, want silence", track)
	}
}

func TestIntermissionDisabled(t *testing.T) {
	ads := NewIntermission(config.AdsConfig{Enabled: false, Duration: 1}, log.New(io.Discard))
	if ads.Ready() {
		t.Error("disabled intermission should not be ready")
	}

	var got core.AdResult = -1
	ads.Show(func(r core.AdResult) { got = r })
	if got != core.AdFailed {
		t.Errorf("Show() result = %v, want failed", got)
	}
	if ads.Showing() {
		t.Error("nothing should be showing")
	}
}

func TestIntermissionSkip(t *testing.T) {
	ads := NewIntermission(config.AdsConfig{Enabled: true, Duration: 60}, log.New(io.Discard))
	defer ads.Close()

	results := make(chan core.AdResult, 2)
	ads.Show(func(r core.AdResult) { results <- r })

	if !ads.Showing() {
		t.Fatal("intermission should be showing")
	}
	if ads.Ready() {
		t.Error("a running intermission is not ready for another")
	}
	if rem := ads.Remaining(); rem <= 0 || rem > time.Minute {
		t.Errorf("Remaining() = %v", rem)
	}

	ads.Skip()
	ads.Skip()
	if got := <-results; got != core.AdSkipped {
		t.Errorf("result = %v, want skipped", got)
	}
	if len(results) != 0 {
		t.Error("completion must be reported once")
	}
	if ads.Showing() {
		t.Error("intermission should have ended")
	}
}

func TestIntermissionFinishes(t *testing.T) {
	ads := NewIntermission(config.AdsConfig{Enabled: true, Duration: 0.01}, log.New(io.Discard))

	results := make(chan core.AdResult, 1)
	ads.Show(func(r core.AdResult) { results <- r })

	select {
	case got := <-results:
		if got != core.AdFinished {
			t.Errorf("result = %v, want finished", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("intermission never finished")
	}
	if !ads.Ready() {
		t.Error("intermission should be ready again")
	}
}
