// Package game implements the Flamin Maze game flow: a fixed-step state
// machine over the maze engine, with its controls, banners and the
// adapter that plugs it into the arcade host.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// Input is everything the machine samples during one tick.
type Input struct {
	Delta       float64    // Seconds since the previous tick
	PointerHeld bool       // Pointer button is down
	Pointer     maze.Point // Pointer position in board cell units
	Touched     Controls   // Controls under the pointer
	IntroDone   bool       // Host intro has finished
}

// Machine drives the phases of the game. It is not safe for concurrent
// use; service completions are queued and applied on the next Tick.
type Machine struct {
	ctx *Context
}

// New creates a machine in the Loading phase. A nil rng is seeded with 1
// and a nil logger discards everything.
func New(cfg config.MazeConfig, svc core.Services, rng *rand.Rand, logger *log.Logger) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{ctx: newContext(cfg, svc, rng, logger)}
}

// Tick advances the machine by one fixed step.
func (m *Machine) Tick(in Input) {
	m.ctx.tick(in)
}

// Resume shows the one-shot hints and the rank again, and hides the board
// when the menu is up.
func (m *Machine) Resume() {
	m.ctx.resume()
}

// Phase returns the kind of the running phase.
func (m *Machine) Phase() PhaseKind { return m.ctx.current.Kind() }

// Maze returns the board.
func (m *Machine) Maze() *maze.Maze { return m.ctx.maze }

// Score returns the displayed score.
func (m *Machine) Score() int { return m.ctx.score }

// Best returns the best score.
func (m *Machine) Best() int { return m.ctx.best }

// GameCount returns the number of games played.
func (m *Machine) GameCount() int { return m.ctx.gameCount }

// Level returns the maze level of the running game.
func (m *Machine) Level() int { return m.ctx.level }

// Difficulty returns the current tier index.
func (m *Machine) Difficulty() int { return m.ctx.difficulty }

// Timer returns the remaining maze time.
func (m *Machine) Timer() float64 { return m.ctx.mazeTimer }

// Brightness returns the board LED brightness in [0,1].
func (m *Machine) Brightness() float64 { return m.ctx.brightness }

// Hue returns the board hue in [0,1).
func (m *Machine) Hue() float64 { return m.ctx.hue }

// BoardDisplayed reports whether the board is shown.
func (m *Machine) BoardDisplayed() bool { return m.ctx.boardDisplayed }

// Banner returns the banner on screen and its opacity.
func (m *Machine) Banner() (Banner, float64) { return m.ctx.banner.shown, m.ctx.banner.alpha }

// Music returns the requested music track, empty for silence.
func (m *Machine) Music() string { return m.ctx.music }

// SlotOpened returns how far the coin slot is open, in [0,1].
func (m *Machine) SlotOpened() float64 { return m.ctx.slotOpened }

// Background returns the index of the background scene.
func (m *Machine) Background() int { return m.ctx.background }

// Enabled reports whether a control is lit.
func (m *Machine) Enabled(c Control) bool { return m.ctx.controls[c].enabled }

// Pushed reports whether a control is under the held pointer.
func (m *Machine) Pushed(c Control) bool { return m.ctx.controls[c].pushed }

// Panels returns the tutorial panel poses, or nil outside the tutorial.
func (m *Machine) Panels() []PanelPose {
	if t, ok := m.ctx.current.(*Tutorial); ok {
		return t.panels
	}
	return nil
}
