package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// start runs the tick that leaves Loading.
func (h *harness) start() {
	h.tick()
}

func TestStartupReachesTitle(t *testing.T) {
	h := newHarness()
	h.players.data = core.PlayerData{BestScore: 7, GameCount: 2}

	h.tick()
	if h.m.Phase() != PhaseSplash {
		t.Fatalf("phase = %v, want splash", h.m.Phase())
	}
	if h.m.Score() != 7 || h.m.Best() != 7 || h.m.GameCount() != 2 {
		t.Errorf("score/best/count = %d/%d/%d, want 7/7/2", h.m.Score(), h.m.Best(), h.m.GameCount())
	}
	if h.m.Difficulty() != 4 {
		t.Errorf("difficulty = %d, want title tier 4", h.m.Difficulty())
	}
	if got := h.audio.music; len(got) != 1 || got[0] != "Neon Lobby" {
		t.Errorf("music = %v, want [Neon Lobby]", got)
	}

	h.tickWith(Input{IntroDone: true})
	h.tick()
	if h.m.Phase() != PhaseTutorial {
		t.Fatalf("phase = %v, want tutorial", h.m.Phase())
	}
	if len(h.m.Panels()) != 4 {
		t.Errorf("panels = %d, want 4", len(h.m.Panels()))
	}

	if !h.until(hold(), 2000, func() bool { return h.m.Phase() == PhaseTitle }) {
		t.Fatalf("tutorial never reached the title, phase = %v", h.m.Phase())
	}
	if h.audio.once[core.SoundDing] != 4 {
		t.Errorf("dings = %d, want 4", h.audio.once[core.SoundDing])
	}
	if h.audio.once[core.SoundLose] != 1 {
		t.Errorf("lose sounds = %d, want 1", h.audio.once[core.SoundLose])
	}
	if !h.m.BoardDisplayed() {
		t.Error("board should be displayed after the tutorial")
	}
	if h.m.Panels() != nil {
		t.Error("panels should only exist during the tutorial")
	}
}

func TestSplashTimesOut(t *testing.T) {
	h := newHarness()
	h.start()

	if !h.until(Input{Delta: 0.1}, 30, func() bool { return h.m.Phase() == PhaseTutorial }) {
		t.Fatalf("splash did not time out, phase = %v", h.m.Phase())
	}
}

func TestTitleControls(t *testing.T) {
	h := newHarness()
	h.start()
	h.enter(&Title{}, tickDelta)

	if !h.until(Input{}, 20, func() bool { return h.m.SlotOpened() > 0.9 }) {
		t.Fatalf("slot never opened: %v", h.m.SlotOpened())
	}
	if !h.m.Enabled(ControlScore) || !h.m.Enabled(ControlButtonPodium) {
		t.Error("score and podium should be lit on the title")
	}

	h.tickWith(hold(ControlBackground, ControlButtonPodium))
	if h.board.shown != 1 {
		t.Errorf("boards shown = %d, want 1", h.board.shown)
	}
	if !h.m.Pushed(ControlButtonPodium) {
		t.Error("podium should be pushed while held")
	}
	h.tick()

	h.tickWith(hold(ControlBackground, ControlSlot))
	h.tick()
	if h.m.Phase() != PhaseCountdown {
		t.Fatalf("phase = %v, want countdown", h.m.Phase())
	}
	if h.m.Enabled(ControlButtonPodium) || h.m.Enabled(ControlSlot) {
		t.Error("podium and slot should be off after the title")
	}
	if h.c.hints&hintCoinSlot == 0 {
		t.Error("coin slot hint should be marked as shown")
	}
}

func TestTitleBoardTap(t *testing.T) {
	h := newHarness()
	h.start()
	h.enter(&Title{}, tickDelta)

	if h.c.banner.requested != BannerCoinSlot {
		t.Fatalf("banner = %q, want the coin slot hint", h.c.banner.requested)
	}

	boardTap := hold(ControlBackground, ControlGameBoard)

	// The first hint cannot be dismissed before a few games.
	h.tickWith(boardTap)
	if !h.m.BoardDisplayed() {
		t.Error("tap should toggle the board on")
	}
	if h.c.banner.requested != BannerCoinSlot {
		t.Error("coin slot hint dismissed too early")
	}
	h.tick()

	h.c.gameCount = 5
	h.tickWith(boardTap)
	if h.c.banner.requested != BannerNone {
		t.Errorf("banner = %q, want dismissed", h.c.banner.requested)
	}
	if !h.m.BoardDisplayed() {
		t.Error("dismissing a banner should not toggle the board")
	}
	h.tick()

	h.tickWith(boardTap)
	if h.m.BoardDisplayed() {
		t.Error("tap should toggle the board off")
	}
}

func TestCountdownPaintsSymbols(t *testing.T) {
	h := newHarness()
	h.start()
	h.enter(&Countdown{}, 0.25)

	ref := maze.New(maze.DefaultWidth, maze.DefaultHeight, nil)
	ref.GenerateFromSymbol(maze.SymbolThree)
	for y := 0; y < maze.DefaultHeight; y++ {
		for x := 0; x < maze.DefaultWidth; x++ {
			if got, want := h.m.Maze().At(x, y).Path(), ref.At(x, y).Path(); got != want {
				t.Fatalf("cell (%d,%d) path = %v, want %v", x, y, got, want)
			}
		}
	}
	if h.m.Level() != 1 || h.m.Score() != 0 || h.m.Timer() != 99.9 {
		t.Errorf("level/score/timer = %d/%d/%v, want 1/0/99.9", h.m.Level(), h.m.Score(), h.m.Timer())
	}
	if !h.m.Enabled(ControlTimer) || !h.m.BoardDisplayed() {
		t.Error("timer and board should be shown during the countdown")
	}

	if !h.until(Input{Delta: 0.25}, 40, func() bool { return h.m.Phase() == PhasePlay }) {
		t.Fatalf("countdown never started the game, phase = %v", h.m.Phase())
	}
	if h.audio.once[core.SoundDing] != 3 {
		t.Errorf("dings = %d, want 3", h.audio.once[core.SoundDing])
	}
	if h.m.Music() != "Hot Corridors" {
		t.Errorf("music = %q, want the first play track", h.m.Music())
	}
	if n := len(h.audio.music); n == 0 || h.audio.music[n-1] != "Hot Corridors" {
		t.Errorf("audio music = %v", h.audio.music)
	}
}

func TestPlayTimerRunsOut(t *testing.T) {
	h := newHarness()
	h.start()
	h.c.level = 1
	h.c.difficulty = 0
	h.c.mazeTimer = 0.05

	h.enter(&Play{}, 0.02)
	if h.m.Phase() != PhasePlay || h.m.Timer() != 0.05 {
		t.Fatalf("phase/timer = %v/%v, want play/0.05", h.m.Phase(), h.m.Timer())
	}
	if !h.audio.looping {
		t.Error("alarm should loop below the warning threshold")
	}
	if h.c.banner.requested != BannerDrawPath {
		t.Errorf("banner = %q, want the draw path hint on level 1", h.c.banner.requested)
	}

	h.tickWith(Input{Delta: 0.02})
	if h.m.Timer() != 0 {
		t.Errorf("timer = %v, want clamped to 0", h.m.Timer())
	}
	if h.m.Phase() != PhasePlay {
		t.Errorf("transition must wait for the next tick, phase = %v", h.m.Phase())
	}

	h.tickWith(Input{Delta: 0.02})
	if h.m.Phase() != PhaseLose {
		t.Fatalf("phase = %v, want lose", h.m.Phase())
	}
	if h.audio.looping {
		t.Error("alarm should stop when leaving play")
	}
	if h.audio.once[core.SoundLose] != 1 {
		t.Errorf("lose sounds = %d, want 1", h.audio.once[core.SoundLose])
	}
	if h.c.banner.requested != BannerNone {
		t.Errorf("banner = %q, want cleared", h.c.banner.requested)
	}
}

func TestPlayDrawingToTheExit(t *testing.T) {
	h := newHarness()
	h.start()
	h.c.level = 1
	h.c.difficulty = 0
	h.c.mazeTimer = 99.9
	h.enter(&Play{}, tickDelta)

	mz := h.m.Maze()
	if mz.GenerationWidth() != 1 {
		t.Fatalf("level 1 width = %d, want 1", mz.GenerationWidth())
	}
	sx, sy := mz.Coords(mz.Start())
	ex, ey := mz.Coords(mz.End())

	h.tickWith(Input{PointerHeld: true, Pointer: maze.Point{X: float64(sx) + 0.5, Y: float64(sy) + 0.5}})
	h.tickWith(Input{PointerHeld: true, Pointer: maze.Point{X: float64(ex) + 0.5, Y: float64(ey) + 0.5}})
	h.tick()

	if h.m.Phase() != PhaseLevelCompleted {
		t.Fatalf("phase = %v, want level completed", h.m.Phase())
	}
	if h.m.Level() != 2 {
		t.Errorf("level = %d, want 2", h.m.Level())
	}
	if h.board.reported[core.BoardHighLevels] != 1 {
		t.Errorf("high levels = %d, want 1", h.board.reported[core.BoardHighLevels])
	}
}

func TestLevelCompletedScore(t *testing.T) {
	h := newHarness()
	h.start()
	h.c.score = 10
	h.c.difficulty = 2
	h.c.level = 3
	h.c.mazeTimer = 50
	h.c.maze.GenerateRandom(5)
	h.c.maze.ClearPath()
	k := h.c.maze.PathLength() - 1

	h.enter(&LevelCompleted{}, tickDelta)
	if !h.until(Input{}, 5000, func() bool { return h.m.Phase() == PhasePlay }) {
		t.Fatalf("cleanup never finished, phase = %v", h.m.Phase())
	}

	if want := 10 + 3*k; h.m.Score() != want {
		t.Errorf("score = %d, want %d (k=%d)", h.m.Score(), want, k)
	}
	if h.m.Difficulty() != 2 {
		t.Errorf("difficulty = %d, want 2", h.m.Difficulty())
	}
	if h.m.Level() != 4 {
		t.Errorf("level = %d, want 4", h.m.Level())
	}
	if want := math.Min(99.9, 50+float64(k)); h.m.Timer() != want {
		t.Errorf("timer = %v, want %v", h.m.Timer(), want)
	}
}

func TestLevelCompletedAdvancesTier(t *testing.T) {
	h := newHarness()
	h.start()
	h.c.level = 4
	h.c.difficulty = 0
	h.c.maze.GenerateRandom(2)

	h.enter(&LevelCompleted{}, tickDelta)
	if h.m.Difficulty() != 1 {
		t.Errorf("difficulty = %d, want 1", h.m.Difficulty())
	}
	if h.m.Music() != "Burning Walls" {
		t.Errorf("music = %q, want the second play track", h.m.Music())
	}
}

func TestLoseSettlesGame(t *testing.T) {
	h := newHarness()
	h.start()
	h.board.scores[core.BoardHighScores] = core.LocalScore{Rank: 3, Value: 50}
	h.board.scores[core.BoardPlayedGames] = core.LocalScore{Rank: 1, Value: 25}
	h.c.score = 42
	h.c.best = 10
	h.c.gameCount = 19
	h.c.level = 1
	h.c.difficulty = 0

	h.enter(&Lose{}, 0.25)
	if h.m.Music() != "" {
		t.Errorf("music = %q, want silence", h.m.Music())
	}
	if !h.until(Input{Delta: 0.25}, 40, func() bool { return h.m.Phase() == PhaseTitle }) {
		t.Fatalf("lose never returned to the title, phase = %v", h.m.Phase())
	}

	if h.c.gameCount != 20 {
		t.Errorf("game count = %d, want 20", h.c.gameCount)
	}
	if h.board.reported[core.BoardHighScores] != 42 {
		t.Errorf("reported best = %d, want 42", h.board.reported[core.BoardHighScores])
	}
	if h.board.progress[core.AchievementLoser] != 100 {
		t.Error("losing on level 1 should report the loser achievement")
	}
	if h.board.progress[core.AchievementExplorer] != 200 {
		t.Errorf("explorer = %v, want 200", h.board.progress[core.AchievementExplorer])
	}
	if h.c.banner.requested != BannerRating {
		t.Errorf("banner = %q, want the rating prompt on game 20", h.c.banner.requested)
	}
	if h.m.Enabled(ControlTimer) {
		t.Error("timer should be off after a game")
	}

	for range 10 {
		h.tick()
	}
	if h.c.rankCurrent != 3 {
		t.Errorf("rank = %d, want 3", h.c.rankCurrent)
	}
	if h.m.Best() != 50 || h.m.GameCount() != 25 {
		t.Errorf("best/count = %d/%d, want 50/25 from the boards", h.m.Best(), h.m.GameCount())
	}
	if h.players.data != (core.PlayerData{BestScore: 50, GameCount: 25}) {
		t.Errorf("saved = %+v", h.players.data)
	}
}

func TestChooseBanner(t *testing.T) {
	tests := []struct {
		name       string
		gameCount  int
		difficulty int
		hints      hintFlags
		want       Banner
		wantHints  hintFlags
	}{
		{"rating", 40, 0, 0, BannerRating, 0},
		{"maze exit", 3, 2, 0, BannerMazeExit, hintMazeExit},
		{"too far for maze exit", 3, 3, 0, BannerTVButton, hintTVButton},
		{"tv button", 3, 0, hintMazeExit, BannerTVButton, hintMazeExit | hintTVButton},
		{"nothing left", 3, 0, hintMazeExit | hintTVButton, BannerNone, hintMazeExit | hintTVButton},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.c.gameCount = tt.gameCount
			h.c.difficulty = tt.difficulty
			h.c.hints = tt.hints

			h.c.chooseBanner()

			if h.c.banner.requested != tt.want {
				t.Errorf("banner = %q, want %q", h.c.banner.requested, tt.want)
			}
			if h.c.hints != tt.wantHints {
				t.Errorf("hints = %b, want %b", h.c.hints, tt.wantHints)
			}
		})
	}
}

func TestCompletionsWaitForNextTick(t *testing.T) {
	h := newHarness()
	h.start()
	h.board.deferred = true

	h.c.reportGame()

	done := make(chan int)
	go func() { done <- h.board.release() }()
	if n := <-done; n != 1 {
		t.Fatalf("released %d completions, want 1", n)
	}
	if h.board.loadCount() != 0 {
		t.Fatal("completion ran before the next tick")
	}

	h.tick()
	if h.board.loadCount() != 1 {
		t.Errorf("loads = %d, want 1 after the tick", h.board.loadCount())
	}
}

func TestAdRefillsTimer(t *testing.T) {
	h := newHarness()
	h.start()
	h.ads.ready = true
	h.c.level = 2
	h.c.difficulty = 0
	h.c.mazeTimer = 20

	h.enter(&Play{}, tickDelta)
	if !h.m.Enabled(ControlButtonTV) {
		t.Fatal("TV button should light up below the warning threshold")
	}

	h.tickWith(hold(ControlBackground, ControlButtonTV))
	if h.ads.shows != 1 {
		t.Fatalf("shows = %d, want 1", h.ads.shows)
	}
	if h.m.Enabled(ControlButtonTV) {
		t.Error("TV button should go dark while the intermission plays")
	}

	frozen := h.m.Timer()
	for range 30 {
		h.tick()
	}
	if h.m.Timer() != frozen {
		t.Errorf("timer moved during the intermission: %v -> %v", frozen, h.m.Timer())
	}

	h.ads.finish(core.AdFinished)
	h.tick()
	if h.c.adCounter != 1 {
		t.Errorf("ad counter = %d, want 1", h.c.adCounter)
	}
	if h.m.Timer() < 99 {
		t.Errorf("timer = %v, want refilled", h.m.Timer())
	}
	if h.audio.looping {
		t.Error("alarm should stop after a refill")
	}
}

func TestAdOfferCapped(t *testing.T) {
	h := newHarness()
	h.start()
	h.ads.ready = true
	h.c.level = 2
	h.c.mazeTimer = 20
	h.c.adCounter = 3

	h.enter(&Play{}, tickDelta)
	if h.m.Enabled(ControlButtonTV) {
		t.Error("no more intermissions after the cap")
	}
}

func TestResume(t *testing.T) {
	h := newHarness()
	h.start()
	h.enter(&Title{}, tickDelta)
	h.c.boardDisplayed = true
	h.c.hints = hintCoinSlot | hintTVButton
	h.c.rankCurrent = 4
	h.c.rankDisplayed = 4
	bg := h.m.Background()

	h.m.Resume()

	if h.c.hints != 0 {
		t.Errorf("hints = %b, want reset", h.c.hints)
	}
	if h.c.rankCurrent != math.MaxInt || h.c.rankDisplayed != math.MaxInt {
		t.Error("rank should be forgotten")
	}
	if h.m.BoardDisplayed() {
		t.Error("board should be hidden on the title after a resume")
	}
	if h.m.Background() != (bg+1)&7 {
		t.Errorf("background = %d, want %d", h.m.Background(), (bg+1)&7)
	}
}

func TestHueTakesShortestWay(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		hue        float64
		want       float64
	}{
		{"wraps up past red", 5, 0.95, 0.955},
		{"goes down", 0, 0.5, 0.495},
		{"snaps when close", 0, 0.332, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.c.difficulty = tt.difficulty
			h.c.hue = tt.hue

			h.c.stepHue()

			if math.Abs(h.c.hue-tt.want) > 1e-9 {
				t.Errorf("hue = %v, want %v", h.c.hue, tt.want)
			}
		})
	}
}
