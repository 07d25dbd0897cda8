package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always answers pick (clamped to n-1) and records every n it was asked for.
type fixedRand struct {
	pick  int
	calls []int
}

func (f *fixedRand) Intn(n int) int {
	f.calls = append(f.calls, n)
	return min(f.pick, n-1)
}

func TestRandomUnvisitedNeighbor(t *testing.T) {
	t.Run("picks by index over south, north, east, west", func(t *testing.T) {
		g := NewGrid(3, 3)
		center := g.CellAt(1, 1)
		want := []*Cell{g.CellAt(1, 2), g.CellAt(1, 0), g.CellAt(2, 1), g.CellAt(0, 1)}

		for i, cell := range want {
			rng := &fixedRand{pick: i}
			assert.Same(t, cell, randomUnvisitedNeighbor(g, center, rng))
			assert.Equal(t, []int{4}, rng.calls)
		}
	})

	t.Run("skips visited and missing neighbours", func(t *testing.T) {
		g := NewGrid(3, 3)
		g.CellAt(1, 0).visited = true
		rng := &fixedRand{pick: 3}

		got := randomUnvisitedNeighbor(g, g.CellAt(0, 0), rng)

		assert.Same(t, g.CellAt(0, 1), got)
		assert.Equal(t, []int{1}, rng.calls)
	})

	t.Run("nil when everything is visited", func(t *testing.T) {
		g := NewGrid(2, 1)
		g.ForEachCell(func(c *Cell) { c.visited = true })
		rng := &fixedRand{}

		assert.Nil(t, randomUnvisitedNeighbor(g, g.CellAt(0, 0), rng))
		assert.Empty(t, rng.calls)
	})

	t.Run("uniform over candidates", func(t *testing.T) {
		g := NewGrid(3, 3)
		center := g.CellAt(1, 1)
		rng := rand.New(rand.NewSource(7))
		counts := make(map[*Cell]int)

		const draws = 8000
		for i := 0; i < draws; i++ {
			counts[randomUnvisitedNeighbor(g, center, rng)]++
		}

		require.Len(t, counts, 4)
		for cell, n := range counts {
			assert.InDelta(t, draws/4, n, draws/20, "neighbour (%d,%d)", cell.X, cell.Y)
		}
	})
}

func TestRemoveWalls(t *testing.T) {
	tests := []struct {
		name         string
		a, b         [2]int
		aSide, bSide Direction
	}{
		{"a right of b", [2]int{2, 1}, [2]int{1, 1}, West, East},
		{"a left of b", [2]int{1, 1}, [2]int{2, 1}, East, West},
		{"a below b", [2]int{1, 2}, [2]int{1, 1}, North, South},
		{"a above b", [2]int{1, 0}, [2]int{1, 1}, South, North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(3, 3)
			a, b := g.CellAt(tt.a[0], tt.a[1]), g.CellAt(tt.b[0], tt.b[1])

			removeWalls(g, a, b)

			assert.False(t, a.HasWall(tt.aSide))
			assert.False(t, b.HasWall(tt.bSide))
			assert.Equal(t, 3, a.WallCount())
			assert.Equal(t, 3, b.WallCount())
			assert.True(t, g.Symmetric())
		})
	}
}

func TestCarveVisitsEveryCell(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := NewGrid(7, 5)
		start := g.CellAt(6, 2)

		carve(g, start, rand.New(rand.NewSource(seed)))

		starts := 0
		g.ForEachCell(func(c *Cell) {
			assert.True(t, c.IsVisited(), "seed %d cell (%d,%d)", seed, c.X, c.Y)
			if c.IsStart() {
				starts++
			}
		})
		assert.Equal(t, 1, starts)
		assert.True(t, start.IsStart())
		assert.True(t, g.Symmetric())
	}
}

func TestCarveSingleCell(t *testing.T) {
	g := NewGrid(1, 1)
	c := g.CellAt(0, 0)
	rng := &fixedRand{}

	carve(g, c, rng)

	assert.True(t, c.IsVisited())
	assert.True(t, c.IsStart())
	assert.Equal(t, 4, c.WallCount())
	assert.Empty(t, rng.calls)
}

func TestCarveCorridor(t *testing.T) {
	// A 4x1 strip only ever has one candidate, so the walk is fully determined.
	g := NewGrid(4, 1)
	rng := &fixedRand{}

	carve(g, g.CellAt(0, 0), rng)

	assert.Equal(t, []int{1, 1, 1}, rng.calls)
	for x := 0; x < 3; x++ {
		assert.False(t, g.CellAt(x, 0).HasEastWall())
		assert.False(t, g.CellAt(x+1, 0).HasWestWall())
	}
	assert.True(t, g.CellAt(0, 0).HasWestWall())
	assert.True(t, g.CellAt(3, 0).HasEastWall())
}
