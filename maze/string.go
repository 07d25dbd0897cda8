package maze

import "strings"

// Palette decorates pieces of the ASCII rendering. Nil functions leave text unchanged.
type Palette struct {
	Wall  func(string) string // Applied to wall segments and corners
	Start func(string) string // Applied to the body of the start cell
}

func (p Palette) wall(s string) string {
	if p.Wall == nil {
		return s
	}
	return p.Wall(s)
}

func (p Palette) start(s string) string {
	if p.Start == nil {
		return s
	}
	return p.Start(s)
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(Palette{})
}

// Render draws the maze as ASCII art, row 0 at the top. The start cell is marked S.
func (m *Maze) Render(p Palette) string {
	if m.grid == nil {
		return ""
	}

	var sb strings.Builder
	g := m.grid

	// Top boundary
	sb.WriteString(p.wall("+"))
	for x := 0; x < g.Width(); x++ {
		sb.WriteString(p.wall(segment(g.CellAt(x, 0).HasNorthWall(), "---")))
		sb.WriteString(p.wall("+"))
	}
	sb.WriteString("\n")

	for y := 0; y < g.Height(); y++ {
		// Cell row
		sb.WriteString(p.wall(segment(g.CellAt(0, y).HasWestWall(), "|")))
		for x := 0; x < g.Width(); x++ {
			cell := g.CellAt(x, y)
			if cell.IsStart() {
				sb.WriteString(p.start(" S "))
			} else {
				sb.WriteString("   ")
			}
			sb.WriteString(p.wall(segment(cell.HasEastWall(), "|")))
		}
		sb.WriteString("\n")

		// Wall row
		sb.WriteString(p.wall("+"))
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(p.wall(segment(g.CellAt(x, y).HasSouthWall(), "---")))
			sb.WriteString(p.wall("+"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func segment(closed bool, s string) string {
	if closed {
		return s
	}
	return strings.Repeat(" ", len(s))
}
