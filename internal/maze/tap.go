package maze

import "math"

// ApplyTap extends the path to cell (x, y) and reports whether the path
// reached the end.
//
// The cell must be a free corridor cell whose parent is on the path.
// A tap may also skip one cell to cut a corner: when the parent is not on
// the path yet, it is accepted if the parent turns (its own direction
// differs from the tapped cell's) and the grandparent is on the path. Both
// cells are then added.
func (m *Maze) ApplyTap(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}

	tap := m.Index(x, y)
	if m.cells[tap]&(FlagInvalid|FlagPath) != 0 {
		return false
	}
	dirTap := m.cells[tap].Back()
	neighbor := tap - m.offset[dirTap]
	if !m.cells[neighbor].Path() {
		if !m.cells[neighbor].HasBack() {
			return false
		}
		dirNeighbor := m.cells[neighbor].Back()
		if dirTap == dirNeighbor || !m.cells[neighbor-m.offset[dirNeighbor]].Path() {
			return false
		}
		m.cells[neighbor] |= FlagPath
	}
	m.cells[tap] |= FlagPath

	return tap == m.end || neighbor == m.end
}

// ApplyTapSegment applies a tap to every cell crossed by the segment from
// begin to end, in order, so that a fast stroke between two samples does
// not skip cells. It reports whether any of the taps reached the end.
// Segments with a non-finite endpoint are ignored and the rest is clipped
// to a one-cell margin around the board.
func (m *Maze) ApplyTapSegment(begin, end Point) bool {
	if !begin.finite() || !end.finite() {
		return false
	}
	var ok bool
	begin, end, ok = clipSegment(begin, end,
		Point{X: -1, Y: -1}, Point{X: float64(m.w + 1), Y: float64(m.h + 1)})
	if !ok {
		return false
	}

	x := int(math.Floor(begin.X))
	y := int(math.Floor(begin.Y))
	if begin == end {
		return m.ApplyTap(x, y)
	}

	dx, dy := end.X-begin.X, end.Y-begin.Y
	lengthMax := math.Hypot(dx, dy)

	// Distance along the segment between two vertical (incX) or horizontal
	// (incY) grid lines, and to the first one of each (lengthX, lengthY).
	incX, incY := lengthMax/dx, lengthMax/dy
	lengthX := math.Abs(begin.X)
	lengthX -= math.Floor(lengthX)
	lengthY := math.Abs(begin.Y)
	lengthY -= math.Floor(lengthY)

	stepX := 1
	if incX > 0 {
		lengthX = 1 - lengthX
	} else {
		incX = -incX
		stepX = -1
	}
	stepY := 1
	if incY > 0 {
		lengthY = 1 - lengthY
	} else {
		incY = -incY
		stepY = -1
	}
	lengthX *= incX
	lengthY *= incY

	reached := false
	for {
		if lengthX < lengthY {
			if lengthX > lengthMax {
				return reached
			}
			x += stepX
			lengthX += incX
		} else {
			if lengthY > lengthMax {
				return reached
			}
			y += stepY
			lengthY += incY
		}
		if m.ApplyTap(x, y) {
			reached = true
		}
	}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// clipSegment cuts the segment from a to b down to the part inside the
// rectangle [lo, hi] (Liang-Barsky). ok is false when nothing is inside.
func clipSegment(a, b, lo, hi Point) (Point, Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return a, b, false
	}
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - lo.X},
		{dx, hi.X - a.X},
		{-dy, a.Y - lo.Y},
		{dy, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	if t1 < 1 {
		b = Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	if t0 > 0 {
		a = Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	return a, b, true
}

// TapTracker turns pointer samples into tap segments. It remembers the
// previous sample while the pointer stays held.
type TapTracker struct {
	tapped   bool
	previous Point
}

// Sample records the pointer state for one tick and returns the segment to
// apply. ok is false when the pointer is released.
func (t *TapTracker) Sample(held bool, p Point) (begin, end Point, ok bool) {
	if !held {
		t.tapped = false
		return Point{}, Point{}, false
	}
	begin = p
	if t.tapped {
		begin = t.previous
	}
	t.tapped = true
	t.previous = p
	return begin, p, true
}

// Reset forgets the previous sample.
func (t *TapTracker) Reset() {
	t.tapped = false
}
