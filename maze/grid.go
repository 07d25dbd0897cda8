package maze

// Grid is a rectangular array of cells addressed by (x, y).
// It exclusively owns its cells; a new Grid is built for every generation pass.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[y][x]
}

// NewGrid creates a grid where every cell has all four walls and is unvisited.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = newCell(x, y)
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at (x, y), or nil when the position is outside the grid.
func (g *Grid) CellAt(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[y][x]
}

// Neighbor returns the cell adjacent to c in direction d, or nil at the border.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	if c == nil || !d.IsValid() {
		return nil
	}
	dx, dy := d.Delta()
	return g.CellAt(c.X+dx, c.Y+dy)
}

// ClearWall opens the side of c facing d and reports whether the flag changed.
// Only c is touched: callers pair it with the opposite side of the neighbour,
// or use OpenWall which does both.
func (g *Grid) ClearWall(c *Cell, d Direction) bool {
	if c == nil || !d.IsValid() || !c.walls[d] {
		return false
	}
	c.walls[d] = false
	return true
}

// OpenWall removes the edge between c and its neighbour in direction d,
// clearing both facing flags. At the border only c's side is cleared.
// It reports whether anything changed.
func (g *Grid) OpenWall(c *Cell, d Direction) bool {
	changed := g.ClearWall(c, d)
	if n := g.Neighbor(c, d); n != nil {
		changed = g.ClearWall(n, d.Opposite()) || changed
	}
	return changed
}

// ForEachCell calls fn for every cell, row by row.
func (g *Grid) ForEachCell(fn func(c *Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			fn(&g.cells[y][x])
		}
	}
}

// Symmetric reports whether every interior edge has the same wall flag on both sides.
func (g *Grid) Symmetric() bool {
	symmetric := true
	g.ForEachCell(func(c *Cell) {
		for _, d := range [2]Direction{East, South} {
			if n := g.Neighbor(c, d); n != nil && c.walls[d] != n.walls[d.Opposite()] {
				symmetric = false
			}
		}
	})
	return symmetric
}
