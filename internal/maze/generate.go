package maze

// GenerateRandom carves a new random maze and returns the length of its
// longest branch.
//
// The playable area is a band of width columns, clamped to [1, W], centred
// on the board and shifted so that it contains the current start. Every
// cell outside the band is blocked. A depth-first random walk from the start
// then visits every cell of the band. Each visited cell stores the direction
// it was entered from, forming a spanning tree rooted at the start. The end
// is the first cell reached at the greatest walk depth.
func (m *Maze) GenerateRandom(width int) int {
	width = min(max(width, 1), m.w)

	left := (m.w - width) >> 1
	right := left + width
	if !m.live(m.start) {
		m.start = m.center()
	} else if startX := m.start % m.stride; startX < left {
		left = startX
		right = left + width
	} else if startX >= right {
		right = startX + 1
		left = right - width
	}
	m.width = width

	m.layoutBand(left, right)
	return m.carve()
}

// layoutBand prepares every column for carving. Columns outside [left,
// right] are blocked with open doors. Column right is the sentinel of the
// band and closes its left door to form the right wall. Band cells are left
// unvisited with closed doors, and the sentinel row below the band keeps its
// top door closed to form the bottom wall.
func (m *Maze) layoutBand(left, right int) {
	for x := 0; x <= m.w; x++ {
		var border, live Cell
		switch {
		case x < left || x > right:
			border = FlagInvalid | FlagBlock | FlagDoorTop | FlagDoorLeft
			live = border
		case x == right:
			border = FlagInvalid | FlagBlock | FlagDoorTop | FlagDoorLeft
			live = FlagInvalid | FlagBlock | FlagDoorTop
		default:
			border = FlagInvalid | FlagBlock | FlagDoorLeft
			live = FlagInvalid
		}
		m.cells[m.Index(x, m.h)] = border
		for y := 0; y < m.h; y++ {
			m.cells[m.Index(x, y)] = live
		}
	}
}

func (m *Maze) carve() int {
	limit := m.stride * m.h
	current := m.start
	m.cells[current] |= FlagPath
	m.end = current

	length, lengthMax := 0, 0
	for {
		direction := m.rng.Intn(4)
		for rotate := 0; ; rotate++ {
			next := current + m.offset[direction]
			if next >= 0 && next < limit && m.cells[next] == FlagInvalid {
				length++
				if length > lengthMax {
					lengthMax = length
					m.end = next
				}
				m.cells[next] = Cell(direction)
				m.openDoor(current, next, direction)
				current = next
				break
			}

			if rotate >= 3 {
				if !m.cells[current].HasBack() {
					return lengthMax
				}
				current -= m.offset[m.cells[current].Back()]
				length--
				break
			}
			direction = (direction + 1) & 3
		}
	}
}

// openDoor opens the edge crossed when moving from current to next. Each
// cell owns its top and left edges, so moving left or up opens a door of
// the cell being left and moving right or down one of the cell entered.
func (m *Maze) openDoor(current, next, direction int) {
	switch Direction(direction) {
	case Left:
		m.cells[current] |= FlagDoorLeft
	case Up:
		m.cells[current] |= FlagDoorTop
	case Right:
		m.cells[next] |= FlagDoorLeft
	case Down:
		m.cells[next] |= FlagDoorTop
	}
}
