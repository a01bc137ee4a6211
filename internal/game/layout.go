package game

import (
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/maze"
)

// Size of a board cell on screen, wall included.
const (
	cellCols = 4
	cellRows = 2
)

// HUD labels. Their widths fix the control rectangles.
const (
	labelTV     = "[ TV ]"
	labelPodium = "[ TOP ]"
	slotWidth   = 8
	timerWidth  = 9
	scoreWidth  = 12
)

// layout places the HUD and the board on a screen of a given size.
type layout struct {
	screenW, screenH int
	board            core.Rect
	controls         [controlCount]core.Rect
}

func newLayout(screenW, screenH, boardW, boardH int) layout {
	l := layout{screenW: screenW, screenH: screenH}

	bw := boardW*cellCols + 1
	bh := boardH*cellRows + 1
	l.board = core.NewRect((screenW-bw)/2, 2, bw, bh)

	l.controls[ControlBackground] = core.NewRect(0, 0, screenW, screenH)
	l.controls[ControlGameBoard] = l.board

	// The HUD sits on row 0 and spans the board width when it fits.
	hudW := max(bw, len(labelTV)+timerWidth+slotWidth+scoreWidth+len(labelPodium)+4)
	x := (screenW - hudW) / 2
	gap := (hudW - len(labelTV) - timerWidth - slotWidth - scoreWidth - len(labelPodium)) / 4

	l.controls[ControlButtonTV] = core.NewRect(x, 0, len(labelTV), 1)
	x += len(labelTV) + gap
	l.controls[ControlTimer] = core.NewRect(x, 0, timerWidth, 1)
	x += timerWidth + gap
	l.controls[ControlSlot] = core.NewRect(x, 0, slotWidth, 1)
	x += slotWidth + gap
	l.controls[ControlScore] = core.NewRect(x, 0, scoreWidth, 1)
	x += scoreWidth + gap
	l.controls[ControlButtonPodium] = core.NewRect(x, 0, len(labelPodium), 1)
	return l
}

// touched returns the controls under a screen position.
func (l layout) touched(x, y float64) Controls {
	var s Controls
	for i, r := range l.controls {
		if r.ContainsF(x, y) {
			s |= ControlsOf(Control(i))
		}
	}
	return s
}

// toBoard converts a screen position to fractional board cell units.
func (l layout) toBoard(x, y float64) maze.Point {
	return maze.Point{
		X: (x - float64(l.board.X)) / cellCols,
		Y: (y - float64(l.board.Y)) / cellRows,
	}
}

// cellOrigin returns the top-left wall corner of board cell (x, y).
func (l layout) cellOrigin(x, y int) (int, int) {
	return l.board.X + x*cellCols, l.board.Y + y*cellRows
}
