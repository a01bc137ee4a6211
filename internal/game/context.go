package game

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// Context is the single owner of the maze and session state. Every phase
// reads and writes it during its own Enter, Execute and Exit.
type Context struct {
	maze  *maze.Maze
	cfg   config.MazeConfig
	tiers config.Difficulty
	rng   *rand.Rand
	log   *log.Logger
	svc   core.Services
	inbox mailbox

	current Phase
	next    Phase
	elapsed float64
	frames  int

	// Input of the running tick.
	held      bool
	pointer   maze.Point
	introDone bool
	taps      taps
	tracker   maze.TapTracker
	controls  [controlCount]controlState

	// Session.
	best          int
	gameCount     int
	score         int
	level         int
	difficulty    int
	mazeTimer     float64
	adEnabled     bool
	adCounter     int
	rankCurrent   int
	rankDisplayed int
	hints         hintFlags

	// Presentation.
	banner         bannerState
	music          string
	musicSent      string
	brightness     float64
	hue            float64
	boardDisplayed bool
	slotOpened     float64
	slotTarget     float64
	background     int
}

func newContext(cfg config.MazeConfig, svc core.Services, rng *rand.Rand, logger *log.Logger) *Context {
	return &Context{
		maze:          maze.New(cfg.Board.Width, cfg.Board.Height, rng),
		cfg:           cfg,
		tiers:         config.NewDifficulty(cfg.Difficulty),
		rng:           rng,
		log:           logger,
		svc:           svc.WithDefaults(),
		current:       &Loading{},
		next:          &Splash{},
		rankCurrent:   math.MaxInt,
		rankDisplayed: math.MaxInt,
	}
}

// tick runs one fixed step of the machine.
func (c *Context) tick(in Input) {
	c.inbox.drain()

	c.held = in.PointerHeld
	c.pointer = in.Pointer
	c.introDone = c.introDone || in.IntroDone
	c.taps.update(in.PointerHeld, in.Touched)

	if c.next != c.current {
		c.exit(c.current)
		c.elapsed = 0
		c.frames = 0
		c.log.Debug("phase", "from", c.current.Kind(), "to", c.next.Kind())
		c.current = c.next
		c.enter(c.current)
	}

	c.execute(c.current)

	c.elapsed += in.Delta
	c.frames++

	c.slotOpened = core.MoveToward(c.slotOpened, c.slotTarget, c.cfg.Effects.SlotSpeed)
	c.banner.step(c.cfg.Effects.BannerFade)
	c.stepHue()
	c.controls[ControlButtonTV].enabled = c.adEnabled
	for i := range c.controls {
		c.controls[i].pushed = c.taps.current.Has(Control(i))
	}
	if c.music != c.musicSent {
		c.musicSent = c.music
		c.svc.Audio.SetMusic(c.music)
	}
}

// stepHue moves the board hue toward the tier hue along the shortest way
// around the color wheel.
func (c *Context) stepHue() {
	target := c.tiers.Tier(c.difficulty).BlockHue
	target -= math.Floor(target)
	c.hue -= math.Floor(c.hue)

	diff := target - c.hue
	if diff > 0.5 {
		diff -= 1
	} else if diff < -0.5 {
		diff += 1
	}
	speed := c.cfg.Effects.HueChangeSpeed
	c.hue += core.ClampF(diff, -speed, speed)
}

func (c *Context) setEnabled(ctrl Control, enabled bool) {
	c.controls[ctrl].enabled = enabled
}

// nextBackground switches to the next of the 8 background scenes.
func (c *Context) nextBackground() {
	c.background = (c.background + 1) & 7
}

// updateMusic picks the play track for the current game and tier.
func (c *Context) updateMusic() {
	tracks := c.cfg.Music.Play
	if len(tracks) == 0 {
		return
	}
	c.music = tracks[(c.gameCount+c.difficulty)%len(tracks)]
}

func (c *Context) loadPlayer() {
	data, err := c.svc.Players.LoadPlayer()
	if err != nil {
		c.log.Warn("load player data", "err", err)
		data = core.PlayerData{}
	}
	c.best = data.BestScore
	c.gameCount = data.GameCount
}

func (c *Context) savePlayer() {
	err := c.svc.Players.SavePlayer(core.PlayerData{BestScore: c.best, GameCount: c.gameCount})
	if err != nil {
		c.log.Warn("save player data", "err", err)
	}
}

// logged returns a completion that only records failures.
func (c *Context) logged(op, id string) func(bool) {
	return deliver(&c.inbox, func(ok bool) {
		if !ok {
			c.log.Debug("service call failed", "op", op, "id", id)
		}
	})
}

func (c *Context) reportProgress(achievement string, percent float64) {
	c.svc.Leaderboard.ReportProgress(achievement, percent, c.logged("progress", achievement))
}

// resume is called when the host comes back to the foreground.
func (c *Context) resume() {
	c.hints = 0
	c.rankCurrent = math.MaxInt
	c.rankDisplayed = math.MaxInt
	if _, ok := c.current.(*Title); ok {
		c.nextBackground()
		c.boardDisplayed = false
	}
}
