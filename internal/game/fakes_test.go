package game

import (
	"sync"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// fakeLeaderboard answers immediately unless deferred is set, in which
// case completions are kept until the test releases them.
type fakeLeaderboard struct {
	mu       sync.Mutex
	deferred bool
	pending  []func()
	scores   map[string]core.LocalScore
	reported map[string]int64
	progress map[string]float64
	loads    int
	shown    int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{
		scores:   make(map[string]core.LocalScore),
		reported: make(map[string]int64),
		progress: make(map[string]float64),
	}
}

func (f *fakeLeaderboard) complete(fn func()) {
	if f.deferred {
		f.pending = append(f.pending, fn)
		return
	}
	fn()
}

func (f *fakeLeaderboard) Authenticate(done func(bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.complete(func() { done(true) })
}

func (f *fakeLeaderboard) ReportScore(board string, value int64, done func(bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reported[board] = value
	f.complete(func() { done(true) })
}

func (f *fakeLeaderboard) LoadLocalScore(board string, done func(core.LocalScore, bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	s, ok := f.scores[board]
	f.complete(func() { done(s, ok) })
}

func (f *fakeLeaderboard) ReportProgress(achievement string, percent float64, done func(bool)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[achievement] = percent
	f.complete(func() { done(true) })
}

func (f *fakeLeaderboard) ShowBoards() {
	f.mu.Lock()
	f.shown++
	f.mu.Unlock()
}

// release runs the kept completions and returns how many there were.
func (f *fakeLeaderboard) release() int {
	f.mu.Lock()
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

func (f *fakeLeaderboard) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

type fakeAds struct {
	ready   bool
	shows   int
	pending func(core.AdResult)
}

func (f *fakeAds) Showing() bool { return f.pending != nil }
func (f *fakeAds) Ready() bool   { return f.ready }
func (f *fakeAds) Show(done func(core.AdResult)) {
	f.shows++
	f.pending = done
}

func (f *fakeAds) finish(r core.AdResult) {
	done := f.pending
	f.pending = nil
	done(r)
}

type fakeAudio struct {
	music   []string
	once    map[core.Sound]int
	looping bool
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{once: make(map[core.Sound]int)}
}

func (f *fakeAudio) SetMusic(track string) { f.music = append(f.music, track) }
func (f *fakeAudio) PlayOnce(s core.Sound) { f.once[s]++ }
func (f *fakeAudio) PlayLoop(core.Sound)   { f.looping = true }
func (f *fakeAudio) StopEffect()           { f.looping = false }
func (f *fakeAudio) EffectPlaying() bool   { return f.looping }

type fakePlayers struct {
	data  core.PlayerData
	saves int
}

func (f *fakePlayers) LoadPlayer() (core.PlayerData, error) { return f.data, nil }
func (f *fakePlayers) SavePlayer(d core.PlayerData) error {
	f.data = d
	f.saves++
	return nil
}

type harness struct {
	m       *Machine
	c       *Context
	board   *fakeLeaderboard
	ads     *fakeAds
	audio   *fakeAudio
	players *fakePlayers
}

func newHarness() *harness {
	h := &harness{
		board:   newFakeLeaderboard(),
		ads:     &fakeAds{},
		audio:   newFakeAudio(),
		players: &fakePlayers{},
	}
	svc := core.Services{Leaderboard: h.board, Ads: h.ads, Audio: h.audio, Players: h.players}
	h.m = New(config.DefaultMazeConfig(), svc, nil, nil)
	h.c = h.m.ctx
	return h
}

const tickDelta = 1.0 / 60

func (h *harness) tick() {
	h.m.Tick(Input{Delta: tickDelta})
}

func (h *harness) tickWith(in Input) {
	if in.Delta == 0 {
		in.Delta = tickDelta
	}
	h.m.Tick(in)
}

// hold is a pointer press away from the board.
func hold(cs ...Control) Input {
	return Input{PointerHeld: true, Pointer: maze.Point{X: -1, Y: -1}, Touched: ControlsOf(cs...)}
}

// enter requests p and runs the tick that enters it.
func (h *harness) enter(p Phase, delta float64) {
	h.c.next = p
	h.m.Tick(Input{Delta: delta})
}

// until ticks with in until cond holds, for at most n ticks.
func (h *harness) until(in Input, n int, cond func() bool) bool {
	for range n {
		if cond() {
			return true
		}
		h.tickWith(in)
	}
	return cond()
}
