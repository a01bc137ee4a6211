// Package maze implements the maze board: a flat grid of byte cells carved
// into a spanning tree by a random depth-first walk, stamped from glyph
// bitmaps, and validated against the path the player draws.
//
// Cells are addressed by index = x + y*(W+1). The extra column on the right
// and the extra row at the bottom are sentinels that only carry the doors of
// the right and bottom borders. Row 0 is the top of the board.
package maze

import "math/rand"

// Default board dimensions in cells.
const (
	DefaultWidth  = 7
	DefaultHeight = 10
)

// Point is a position in board cell units; cell (x, y) covers
// [x, x+1) × [y, y+1).
type Point struct {
	X, Y float64
}

// Maze is the board state. It is not safe for concurrent use.
type Maze struct {
	w, h   int
	stride int
	cells  []Cell
	offset [4]int

	start int
	end   int
	width int

	rng *rand.Rand
}

// New creates a w×h board. rng drives random carving; nil seeds from 1.
func New(w, h int, rng *rand.Rand) *Maze {
	if w < 1 {
		w = DefaultWidth
	}
	if h < 1 {
		h = DefaultHeight
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	stride := w + 1
	m := &Maze{
		w:      w,
		h:      h,
		stride: stride,
		cells:  make([]Cell, stride*(h+1)),
		offset: [4]int{-1, -stride, 1, stride},
		rng:    rng,
	}
	m.Reset()
	m.InitializeStart()
	m.end = m.start
	return m
}

// Width returns the number of live columns.
func (m *Maze) Width() int { return m.w }

// Height returns the number of live rows.
func (m *Maze) Height() int { return m.h }

// Index returns the storage index of (x, y).
func (m *Maze) Index(x, y int) int { return x + y*m.stride }

// Coords returns the position of a storage index.
func (m *Maze) Coords(index int) (x, y int) { return index % m.stride, index / m.stride }

// At returns the cell at (x, y), including the sentinel row and column.
// Positions outside the storage read as a blocked cell.
func (m *Maze) At(x, y int) Cell {
	if x < 0 || x > m.w || y < 0 || y > m.h {
		return FlagInvalid | FlagBlock
	}
	return m.cells[m.Index(x, y)]
}

// Start returns the index of the entrance cell.
func (m *Maze) Start() int { return m.start }

// End returns the index of the exit cell.
func (m *Maze) End() int { return m.end }

// GenerationWidth is the band width used by the last random generation.
func (m *Maze) GenerationWidth() int { return m.width }

// live reports whether index addresses a playable cell.
func (m *Maze) live(index int) bool {
	return index >= 0 && index < m.stride*m.h && index%m.stride < m.w
}

// Reset blanks the whole board: every cell blocked, without parent, and
// with both doors open so that no wall is drawn anywhere.
func (m *Maze) Reset() {
	for i := range m.cells {
		m.cells[i] = FlagInvalid | FlagBlock | FlagDoorTop | FlagDoorLeft
	}
	m.width = 0
}

// InitializeStart places the entrance at the centre of the top row.
func (m *Maze) InitializeStart() {
	m.start = (m.w - 1) >> 1
}

// SetStart records the entrance cell. An index that does not address a
// live cell moves the entrance to the centre of the board.
func (m *Maze) SetStart(index int) {
	if !m.live(index) {
		index = m.center()
	}
	m.start = index
}

func (m *Maze) center() int {
	return (m.w-1)>>1 + m.stride*((m.h-1)>>1)
}
