package maze

import "github.com/spakin/disjoint"

// Stats summarises the connectivity of a generated maze.
type Stats struct {
	Cells      int `json:"cells"`
	Rooms      int `json:"rooms"`
	RoomCells  int `json:"room_cells"`
	OpenEdges  int `json:"open_edges"` // Interior edges with no wall
	Components int `json:"components"`
	Cycles     int `json:"cycles"` // OpenEdges - Cells + Components

	// Same counts restricted to cells outside rooms and edges between two such cells.
	OutsideCells      int `json:"outside_cells"`
	OutsideEdges      int `json:"outside_edges"`
	OutsideComponents int `json:"outside_components"`
	OutsideCycles     int `json:"outside_cycles"`
}

// Stats computes connectivity counts for the current layout using disjoint sets.
// It returns the zero value before a successful Generate.
func (m *Maze) Stats() Stats {
	if m.grid == nil {
		return Stats{}
	}

	g := m.grid
	all := make([]*disjoint.Element, g.Width()*g.Height())
	outside := make([]*disjoint.Element, len(all))
	index := func(c *Cell) int { return c.Y*g.Width() + c.X }

	s := Stats{Cells: len(all), Rooms: len(m.rooms)}
	g.ForEachCell(func(c *Cell) {
		all[index(c)] = disjoint.NewElement()
		if m.InRoom(c.X, c.Y) {
			s.RoomCells++
			return
		}
		outside[index(c)] = disjoint.NewElement()
		s.OutsideCells++
	})

	g.ForEachCell(func(c *Cell) {
		for _, d := range [2]Direction{East, South} {
			n := g.Neighbor(c, d)
			if n == nil || c.HasWall(d) || n.HasWall(d.Opposite()) {
				continue
			}
			s.OpenEdges++
			disjoint.Union(all[index(c)], all[index(n)])

			a, b := outside[index(c)], outside[index(n)]
			if a != nil && b != nil {
				s.OutsideEdges++
				disjoint.Union(a, b)
			}
		}
	})

	s.Components = countRoots(all)
	s.OutsideComponents = countRoots(outside)
	s.Cycles = s.OpenEdges - s.Cells + s.Components
	s.OutsideCycles = s.OutsideEdges - s.OutsideCells + s.OutsideComponents
	return s
}

func countRoots(elems []*disjoint.Element) int {
	roots := make(map[*disjoint.Element]struct{})
	for _, e := range elems {
		if e != nil {
			roots[e.Find()] = struct{}{}
		}
	}
	return len(roots)
}
