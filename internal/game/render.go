package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/flamin-maze/internal/core"
)

// Wall junctions indexed by the walls leaving them: up=1, down=2, left=4, right=8.
var junctions = [16]rune{' ', '╵', '╷', '│', '╴', '┘', '┐', '┤', '╶', '└', '┌', '├', '─', '┴', '┬', '┼'}

// Background scenes, one per value of Machine.Background.
var scenes = [8]struct {
	r rune
	c core.Color
}{
	{'·', core.ColorDim},
	{'.', core.ColorBlue},
	{'˙', core.ColorMagenta},
	{'·', core.ColorCyan},
	{'.', core.ColorRed},
	{'°', core.ColorGray},
	{'·', core.ColorGreen},
	{'˙', core.ColorYellow},
}

// Render draws the current game state to the screen.
func (f *Flamin) Render(dst *core.Screen) {
	if dst.Width() != f.layout.screenW || dst.Height() != f.layout.screenH {
		f.layout = newLayout(dst.Width(), dst.Height(), f.cfg.Board.Width, f.cfg.Board.Height)
	}
	m := f.machine

	f.drawBackground(dst, m.Background())

	switch m.Phase() {
	case PhaseLoading, PhaseSplash:
		f.drawSplash(dst)
		return
	}

	f.drawHUD(dst)
	if m.BoardDisplayed() {
		f.drawBoard(dst)
	} else {
		dst.DrawRect(f.layout.board, ' ', core.ColorDefault)
		dst.DrawBox(f.layout.board, core.ColorDim)
	}
	f.drawPanels(dst)
	f.drawBanner(dst)
}

func (f *Flamin) drawBackground(dst *core.Screen, scene int) {
	s := scenes[scene&7]
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+5*y+3*scene)%11 == 0 {
				dst.SetColor(x, y, s.r, s.c)
			}
		}
	}
}

func (f *Flamin) drawSplash(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "F L A M I N   M A Z E", core.ColorOrange)
	dst.DrawTextCentered(y+2, "draw the path, beat the clock", core.ColorGray)
}

func (f *Flamin) drawHUD(dst *core.Screen) {
	m := f.machine
	l := f.layout

	button := func(c Control, label string, lit core.Color) {
		color := core.ColorDim
		switch {
		case m.Pushed(c) && m.Enabled(c):
			color = core.ColorBrightWhite
		case m.Enabled(c):
			color = lit
		}
		r := l.controls[c]
		dst.DrawTextColor(r.X, r.Y, label, color)
	}

	button(ControlButtonTV, labelTV, core.ColorBrightYellow)
	button(ControlButtonPodium, labelPodium, core.ColorBrightCyan)
	button(ControlTimer, fmt.Sprintf("TIME %3d", int(math.Floor(m.Timer()))), core.ColorBrightRed)
	button(ControlScore, fmt.Sprintf("SCORE %5d", m.Score()), core.ColorBrightGreen)

	inner := slotWidth - 2
	open := int(m.SlotOpened()*float64(inner) + 0.5)
	pad := (inner - open) / 2
	slot := "[" + strings.Repeat("─", pad) + strings.Repeat("▓", open) + strings.Repeat("─", inner-open-pad) + "]"
	button(ControlSlot, slot, core.ColorBrightYellow)

	if m.Level() > 0 && l.board.Bottom() < dst.Height() {
		status := fmt.Sprintf("LEVEL %d   BEST %d", m.Level(), m.Best())
		dst.DrawTextCentered(l.board.Bottom(), status, core.ColorGray)
	}
}

// wallColor maps the LED brightness to a color. ok is false when the LEDs are off.
func wallColor(brightness float64) (core.Color, bool) {
	switch {
	case brightness >= 0.75:
		return core.ColorOrange, true
	case brightness >= 0.4:
		return core.ColorRed, true
	case brightness > 0.1:
		return core.ColorDim, true
	default:
		return core.ColorDefault, false
	}
}

func (f *Flamin) drawBoard(dst *core.Screen) {
	m := f.machine
	mz := m.Maze()
	l := f.layout
	w, h := mz.Width(), mz.Height()

	dst.DrawRect(l.board, ' ', core.ColorDefault)

	block := core.HueColor(m.Hue())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mz.At(x, y).Path() {
				continue
			}
			ox, oy := l.cellOrigin(x, y)
			for dx := 1; dx < cellCols; dx++ {
				dst.SetColor(ox+dx, oy+1, '█', block)
			}
		}
	}

	if f.cursorShown && m.Phase() == PhasePlay {
		ox, oy := l.cellOrigin(f.cursorX, f.cursorY)
		dst.SetColor(ox+cellCols/2, oy+1, '◆', core.ColorBrightWhite)
	}

	wall, on := wallColor(m.Brightness())
	if !on {
		return
	}

	top := func(x, y int) bool { return x >= 0 && x < w && !mz.At(x, y).DoorTop() }
	left := func(x, y int) bool { return y >= 0 && y < h && !mz.At(x, y).DoorLeft() }

	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			ox, oy := l.cellOrigin(x, y)
			var arms int
			if left(x, y-1) {
				arms |= 1
			}
			if left(x, y) {
				arms |= 2
			}
			if top(x-1, y) {
				arms |= 4
			}
			if top(x, y) {
				arms |= 8
			}
			if arms != 0 {
				dst.SetColor(ox, oy, junctions[arms], wall)
			}
			if top(x, y) {
				for dx := 1; dx < cellCols; dx++ {
					dst.SetColor(ox+dx, oy, '─', wall)
				}
			}
			if left(x, y) {
				dst.SetColor(ox, oy+1, '│', wall)
			}
		}
	}
}

func (f *Flamin) drawPanels(dst *core.Screen) {
	captions := f.cfg.Tutorial.Panels
	cx, cy := f.layout.board.Center()
	for i, pose := range f.machine.Panels() {
		if pose.Alpha < 0.1 || i >= len(captions) {
			continue
		}
		caption := fmt.Sprintf("%d. %s", i+1, captions[i])
		width := max(utf8.RuneCountInString(caption)+4, int(30*pose.Scale))
		px := cx + int(pose.X*0.16) - width/2
		py := cy - int(pose.Y*0.06) - 1

		color := core.ColorGray
		if pose.Alpha >= 0.6 {
			color = core.ColorBrightCyan
		}
		r := core.NewRect(px, py, width, 3)
		dst.DrawRect(r, ' ', core.ColorDefault)
		dst.DrawBox(r, color)
		dst.DrawTextColor(px+(width-utf8.RuneCountInString(caption))/2, py+1, caption, color)
	}
}

func (f *Flamin) drawBanner(dst *core.Screen) {
	text, alpha := f.machine.Banner()
	if text == BannerNone || alpha <= 0 {
		return
	}

	width := min(f.layout.board.W+8, dst.Width()-2)
	lines := strings.Split(ansi.Wordwrap(string(text), width-4, ""), "\n")

	color := core.ColorGray
	if alpha >= 0.5 {
		color = core.ColorBrightWhite
	}

	_, cy := f.layout.board.Center()
	r := core.NewRect((dst.Width()-width)/2, cy-(len(lines)+2)/2, width, len(lines)+2)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, color)
	for i, line := range lines {
		x := r.X + (width-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, r.Y+1+i, line, color)
	}
}
