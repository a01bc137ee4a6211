package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/core"
)

// effectLength is how long a one-shot effect stays on the status line.
const effectLength = 600 * time.Millisecond

// Audio is a core.Audio for terminals: there is no sound device, so the
// current track and effect are shown on the status line instead.
type Audio struct {
	logger *log.Logger
	now    func() time.Time

	mu      sync.Mutex
	music   string
	effect  core.Sound
	since   time.Time
	playing bool
	looping bool
}

// NewAudio creates the terminal audio service.
func NewAudio(logger *log.Logger) *Audio {
	return &Audio{logger: logger, now: time.Now}
}

// SetMusic switches the music track. An empty track stops the music.
func (a *Audio) SetMusic(track string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if track == a.music {
		return
	}
	a.logger.Debug("music", "from", a.music, "to", track)
	a.music = track
}

// PlayOnce plays an effect once, replacing the current effect.
func (a *Audio) PlayOnce(s core.Sound) {
	a.start(s, false)
}

// PlayLoop plays an effect until StopEffect.
func (a *Audio) PlayLoop(s core.Sound) {
	a.start(s, true)
}

func (a *Audio) start(s core.Sound, loop bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.effect = s
	a.since = a.now()
	a.playing = true
	a.looping = loop
}

// StopEffect stops the current effect.
func (a *Audio) StopEffect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playing = false
	a.looping = false
}

// EffectPlaying reports whether an effect is still audible.
func (a *Audio) EffectPlaying() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playingLocked()
}

func (a *Audio) playingLocked() bool {
	if !a.playing {
		return false
	}
	if !a.looping && a.now().Sub(a.since) >= effectLength {
		a.playing = false
	}
	return a.playing
}

// Status returns the current track and the audible effect, if any.
func (a *Audio) Status() (track string, effect core.Sound, playing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.music, a.effect, a.playingLocked()
}

var _ core.Audio = (*Audio)(nil)
