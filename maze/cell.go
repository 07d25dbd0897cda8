package maze

// Cell represents a single cell in a maze grid.
// It holds one wall flag per side plus the generation state of the cell.
type Cell struct {
	X int // Column of the cell, 0 <= X < width
	Y int // Row of the cell, 0 <= Y < height

	walls   [4]bool // walls[d] is true while the side facing d is closed
	visited bool
	start   bool
}

func newCell(x, y int) Cell {
	return Cell{
		X:     x,
		Y:     y,
		walls: [4]bool{true, true, true, true},
	}
}

// HasWall returns true if the side of the cell facing d is closed.
func (c *Cell) HasWall(d Direction) bool {
	if !d.IsValid() {
		return false
	}
	return c.walls[d]
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool {
	return c.walls[North]
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool {
	return c.walls[South]
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool {
	return c.walls[East]
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool {
	return c.walls[West]
}

// WallCount returns how many of the four sides are closed.
func (c *Cell) WallCount() int {
	n := 0
	for _, w := range c.walls {
		if w {
			n++
		}
	}
	return n
}

// IsVisited returns true once the carving walk has reached the cell.
func (c *Cell) IsVisited() bool {
	return c.visited
}

// IsStart returns true for the cell the carving walk started from.
func (c *Cell) IsStart() bool {
	return c.start
}
