package maze

// Direction is a step between neighboring cells. The order matches the
// offset table of a grid: left, up, right, down.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Cell packs the state of one grid cell into a byte.
//
// The low two bits hold the direction that was taken to enter the cell
// while carving; stepping back against it reaches the parent. FlagInvalid
// marks a cell without a parent (the start, unvisited cells and borders).
type Cell uint8

const (
	dirMask Cell = 3

	FlagInvalid  Cell = 4
	FlagBlock    Cell = 8
	FlagPath     Cell = 16
	FlagDoorTop  Cell = 32
	FlagDoorLeft Cell = 64
)

// HasBack reports whether the cell has a parent in the spanning tree.
func (c Cell) HasBack() bool { return c&FlagInvalid == 0 }

// Back is the direction the cell was entered from its parent.
// Only meaningful when HasBack is true.
func (c Cell) Back() Direction { return Direction(c & dirMask) }

// Blocked reports whether the cell lies outside the carved region.
func (c Cell) Blocked() bool { return c&FlagBlock != 0 }

// Path reports whether the player's path covers the cell.
func (c Cell) Path() bool { return c&FlagPath != 0 }

// DoorTop reports whether the edge above the cell is open.
func (c Cell) DoorTop() bool { return c&FlagDoorTop != 0 }

// DoorLeft reports whether the edge left of the cell is open.
func (c Cell) DoorLeft() bool { return c&FlagDoorLeft != 0 }
