package maze

// Glyph is a bitmap stamped onto the board, one string per row from the
// top; '#' marks a path cell. Missing rows and columns are empty.
type Glyph []string

func (g Glyph) set(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) && g[y][x] == '#'
}

// Symbols shown by the countdown and the lose screen.
var (
	SymbolThree = Glyph{
		".......",
		"..###..",
		".#...#.",
		".....#.",
		"...##..",
		".....#.",
		".....#.",
		".#...#.",
		"..###..",
		".......",
	}
	SymbolTwo = Glyph{
		".......",
		"..###..",
		".#...#.",
		".....#.",
		"....#..",
		"...#...",
		"..#....",
		".#.....",
		".#####.",
		".......",
	}
	SymbolOne = Glyph{
		".......",
		"...#...",
		"..##...",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		"...#...",
		"..###..",
		".......",
	}
	SymbolGo = Glyph{
		".##....",
		"#......",
		"#.##...",
		"#..#...",
		".##....",
		"....##.",
		"...#..#",
		"...#..#",
		"...#..#",
		"....##.",
	}
	SymbolSkull = Glyph{
		".#####.",
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
		"###.###",
		".#####.",
		".#.#.#.",
		".#.#.#.",
		".#####.",
	}
)

// Countdown lists the symbols shown before a game, in order.
var Countdown = []Glyph{SymbolThree, SymbolTwo, SymbolOne, SymbolGo}

// TitleStrip is the marquee scrolled on the title screen, one row per
// scroll step. Rows enter at the bottom, so the strip reads top to bottom.
var TitleStrip = Glyph{
	".......",
	".......",
	".......",
	".......",
	".......",
	// F
	".#####.",
	".#.....",
	".#.....",
	".####..",
	".#.....",
	".#.....",
	".#.....",
	".......",
	".......",
	// L
	".#.....",
	".#.....",
	".#.....",
	".#.....",
	".#.....",
	".#.....",
	".#####.",
	".......",
	".......",
	// A
	"..###..",
	".#...#.",
	".#...#.",
	".#####.",
	".#...#.",
	".#...#.",
	".#...#.",
	".......",
	".......",
	// M
	".#...#.",
	".##.##.",
	".#.#.#.",
	".#...#.",
	".#...#.",
	".#...#.",
	".#...#.",
	".......",
	".......",
	// I
	"..###..",
	"...#...",
	"...#...",
	"...#...",
	"...#...",
	"...#...",
	"..###..",
	".......",
	".......",
	// N
	".#...#.",
	".#...#.",
	".##..#.",
	".#.#.#.",
	".#..##.",
	".#...#.",
	".#...#.",
	".......",
	".......",
	".......",
	".......",
	".......",
	// M
	".#...#.",
	".##.##.",
	".#.#.#.",
	".#...#.",
	".#...#.",
	".#...#.",
	".#...#.",
	".......",
	".......",
	// A
	"..###..",
	".#...#.",
	".#...#.",
	".#####.",
	".#...#.",
	".#...#.",
	".#...#.",
	".......",
	".......",
	// Z
	".#####.",
	".....#.",
	"....#..",
	"...#...",
	"..#....",
	".#.....",
	".#####.",
	".......",
	".......",
	// E
	".#####.",
	".#.....",
	".#.....",
	".####..",
	".#.....",
	".#.....",
	".#####.",
	".......",
	".......",
	".......",
	".......",
	".......",
	// icon
	"#####.#",
	"#.....#",
	"#.#####",
	"#.#...#",
	"#.#.#.#",
	"#...#.#",
	"#####.#",
}

// GenerateFromSymbol paints the whole board from g. No random state is
// involved. A door is open when the two cells it separates are both on or
// both off the glyph, so walls outline the glyph.
func (m *Maze) GenerateFromSymbol(g Glyph) {
	for y := 0; y <= m.h; y++ {
		for x := 0; x <= m.w; x++ {
			path := g.set(x, y)
			c := FlagInvalid
			if path {
				c |= FlagPath
			}
			if (x == 0 || !m.cells[m.Index(x-1, y)].Path()) != path {
				c |= FlagDoorLeft
			}
			if (y == 0 || !m.cells[m.Index(x, y-1)].Path()) != path {
				c |= FlagDoorTop
			}
			m.cells[m.Index(x, y)] = c
		}
	}
}

// ScrollTitle moves every row of the board up by one and paints row
// step of TitleStrip (wrapping) on the bottom row. The sentinel row below
// takes the top doors computed against the row that scrolls in next.
func (m *Maze) ScrollTitle(step int) {
	copy(m.cells, m.cells[m.stride:])

	n := len(TitleStrip)
	current := step % n
	if current < 0 {
		current += n
	}
	next := (current + 1) % n

	bottom := m.h - 1
	for x := 0; x <= m.w; x++ {
		path := TitleStrip.set(x, current)
		c := FlagInvalid
		if path {
			c |= FlagPath
		}
		if (x == 0 || !m.cells[m.Index(x-1, bottom)].Path()) != path {
			c |= FlagDoorLeft
		}
		if (bottom == 0 || !m.cells[m.Index(x, bottom-1)].Path()) != path {
			c |= FlagDoorTop
		}
		m.cells[m.Index(x, bottom)] = c

		sentinel := FlagInvalid | FlagDoorLeft
		if TitleStrip.set(x, next) == path {
			sentinel |= FlagDoorTop
		}
		m.cells[m.Index(x, m.h)] = sentinel
	}
}
