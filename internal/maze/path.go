package maze

// ClearPath replaces the player's path with the solution: the chain of
// parents from the end back to the start.
func (m *Maze) ClearPath() {
	for i := 0; i < m.stride*m.h; i++ {
		m.cells[i] &^= FlagPath
	}

	i := m.end
	m.cells[i] |= FlagPath
	for m.cells[i].HasBack() {
		i -= m.offset[m.cells[i].Back()]
		m.cells[i] |= FlagPath
	}
}

// IsPathFullyCleaned reports whether StepPathCleanup has walked the start
// all the way to the end.
func (m *Maze) IsPathFullyCleaned() bool {
	return m.start == m.end
}

// StepPathCleanup erases the start cell from the path and moves the start
// to its child on the path. Once the start has reached the end, the
// entrance of the next maze is the exit of this one.
func (m *Maze) StepPathCleanup() {
	m.cells[m.start] &^= FlagPath
	limit := m.stride * m.h
	for d := range 4 {
		next := m.start + m.offset[d]
		if next < 0 || next >= limit {
			continue
		}
		if m.cells[next]&(dirMask|FlagInvalid|FlagPath) == Cell(d)|FlagPath {
			m.start = next
			return
		}
	}
}

// PathLength counts the live cells currently on the path.
func (m *Maze) PathLength() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.cells[m.Index(x, y)].Path() {
				n++
			}
		}
	}
	return n
}
