package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
	"github.com/vovakirdan/flamin-maze/internal/registry"
)

// ID is the registry identifier of Flamin Maze.
const ID = "flamin"

// Flamin plugs the Machine into the arcade host: it maps host input to
// pointer samples and controls, and draws the machine into a Screen.
type Flamin struct {
	cfg     config.MazeConfig
	svc     core.Services
	logger  *log.Logger
	runtime core.RuntimeConfig
	machine *Machine
	layout  layout

	cursorX, cursorY int
	cursorShown      bool
}

// NewFlamin creates the game with the built-in configuration.
// It is ready to step on the default runtime until the host resets it.
func NewFlamin() *Flamin {
	f := &Flamin{
		cfg:    config.DefaultMazeConfig(),
		logger: log.New(io.Discard),
	}
	f.Reset(core.DefaultConfig())
	return f
}

// ID returns the unique identifier for this game.
func (f *Flamin) ID() string { return ID }

// Title returns the display name for this game.
func (f *Flamin) Title() string { return "Flamin Maze" }

// LoadConfig reads maze.yaml from path (or the default locations) and
// applies a difficulty preset. It takes effect on the next Reset.
func (f *Flamin) LoadConfig(path, preset string) error {
	cfg, err := config.LoadMaze(path)
	if err != nil {
		return err
	}
	if preset != "" {
		switch p := config.DifficultyPreset(preset); p {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyMazePreset(&cfg, p)
		default:
			return fmt.Errorf("game: unknown difficulty %q", preset)
		}
	}
	f.cfg = cfg
	return nil
}

// Bind attaches the platform services. It takes effect on the next Reset.
func (f *Flamin) Bind(svc core.Services, logger *log.Logger) {
	f.svc = svc
	if logger != nil {
		f.logger = logger
	}
}

// Reset starts the game over from the Loading phase.
func (f *Flamin) Reset(cfg core.RuntimeConfig) {
	f.runtime = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f.machine = New(f.cfg, f.svc, rand.New(rand.NewSource(seed)), f.logger)
	f.layout = newLayout(cfg.ScreenW, cfg.ScreenH, f.cfg.Board.Width, f.cfg.Board.Height)
	f.cursorX = (f.cfg.Board.Width - 1) / 2
	f.cursorY = 0
	f.cursorShown = false
}

// AdsConfig returns the intermission settings of the loaded config.
func (f *Flamin) AdsConfig() config.AdsConfig { return f.cfg.Ads }

// Machine exposes the state machine, mostly for tests and overlays.
func (f *Flamin) Machine() *Machine { return f.machine }

// Resume is called when the player comes back to the game.
func (f *Flamin) Resume() { f.machine.Resume() }

// Step advances the game by one tick.
func (f *Flamin) Step(in core.InputFrame) core.StepResult {
	f.machine.Tick(f.input(in))
	return core.StepResult{State: f.State()}
}

// input converts a host frame into a machine input. A held mouse wins
// over keys; a key press is a pointer press lasting one tick.
func (f *Flamin) input(in core.InputFrame) Input {
	out := Input{Delta: f.runtime.Delta(), IntroDone: in.IntroDone}

	if in.Pointer.Held {
		f.cursorShown = false
		x, y := in.Pointer.X+0.5, in.Pointer.Y+0.5
		out.PointerHeld = true
		out.Pointer = f.layout.toBoard(x, y)
		out.Touched = f.layout.touched(x, y)
		return out
	}

	if dx, dy, ok := cursorMove(in); ok {
		f.cursorShown = true
		f.cursorX = core.Clamp(f.cursorX+dx, 0, f.cfg.Board.Width-1)
		f.cursorY = core.Clamp(f.cursorY+dy, 0, f.cfg.Board.Height-1)
		out.PointerHeld = true
		out.Pointer.X = float64(f.cursorX) + 0.5
		out.Pointer.Y = float64(f.cursorY) + 0.5
		return out
	}

	// Shortcut presses land off the board so they never draw a path.
	press := func(cs ...Control) {
		out.PointerHeld = true
		out.Pointer = maze.Point{X: -1, Y: -1}
		out.Touched = ControlsOf(cs...)
	}
	switch {
	case in.Has(core.ActionSlot):
		press(ControlBackground, ControlSlot)
	case in.Has(core.ActionPodium):
		press(ControlBackground, ControlButtonPodium)
	case in.Has(core.ActionTV):
		press(ControlBackground, ControlButtonTV)
	case in.Has(core.ActionBoard):
		press(ControlBackground, ControlGameBoard)
	}
	return out
}

func cursorMove(in core.InputFrame) (dx, dy int, ok bool) {
	switch {
	case in.Has(core.ActionUp):
		return 0, -1, true
	case in.Has(core.ActionDown):
		return 0, 1, true
	case in.Has(core.ActionLeft):
		return -1, 0, true
	case in.Has(core.ActionRight):
		return 1, 0, true
	}
	return 0, 0, false
}

// State returns the current game state.
func (f *Flamin) State() core.GameState {
	return core.GameState{
		Score: f.machine.Score(),
		Level: f.machine.Level(),
		Phase: f.machine.Phase().String(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return NewFlamin()
	})
}
