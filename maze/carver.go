package maze

// Rand is the random source used by generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// neighborOrder is the order candidates are collected in. The pick is uniform
// over the collected candidates, so the order only matters for replaying a seed.
var neighborOrder = [4]Direction{South, North, East, West}

// randomUnvisitedNeighbor returns a uniformly chosen unvisited neighbour of c,
// or nil when every neighbour has been visited.
func randomUnvisitedNeighbor(g *Grid, c *Cell, rng Rand) *Cell {
	var pool [4]*Cell
	n := 0
	for _, d := range neighborOrder {
		if nb := g.Neighbor(c, d); nb != nil && !nb.visited {
			pool[n] = nb
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return pool[rng.Intn(n)]
}

// removeWalls opens the edge between two adjacent cells. The cell with the
// larger x loses its west wall, the cell with the larger y loses its north wall.
func removeWalls(g *Grid, a, b *Cell) {
	switch diff := a.X - b.X; {
	case diff > 0:
		g.ClearWall(a, West)
		g.ClearWall(b, East)
	case diff < 0:
		g.ClearWall(a, East)
		g.ClearWall(b, West)
	}

	switch diff := a.Y - b.Y; {
	case diff > 0:
		g.ClearWall(a, North)
		g.ClearWall(b, South)
	case diff < 0:
		g.ClearWall(a, South)
		g.ClearWall(b, North)
	}
}

// carve runs a randomized depth-first walk from start using an explicit stack,
// opening a wall every time it steps into an unvisited cell. It stops when the
// stack is empty, at which point every cell of the grid has been visited.
func carve(g *Grid, start *Cell, rng Rand) {
	start.visited = true
	start.start = true
	stack := []*Cell{start}

	for len(stack) > 0 {
		current := pop(&stack)

		next := randomUnvisitedNeighbor(g, current, rng)
		if next == nil {
			continue
		}

		stack = append(stack, current)
		removeWalls(g, current, next)
		next.visited = true
		stack = append(stack, next)
	}
}

// pop removes and returns the last element of the stack.
func pop(s *[]*Cell) *Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
