package maze

import "fmt"

const (
	attemptsPerCell      = 4
	minPlacementAttempts = 256
)

// Room is a rectangle of cells whose walls are opened before carving.
type Room struct {
	X      int // Column of the top-left cell
	Y      int // Row of the top-left cell
	Width  int
	Height int
}

// Contains reports whether (x, y) lies inside the room's rectangle.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Cells returns the number of cells covered by the room.
func (r Room) Cells() int {
	return r.Width * r.Height
}

// inflatedOverlaps reports whether the rooms, each grown by one cell on every
// side, intersect.
func (r Room) inflatedOverlaps(o Room) bool {
	return r.X >= o.X-r.Width-1 && r.X <= o.X+o.Width+1 &&
		r.Y >= o.Y-r.Height-1 && r.Y <= o.Y+o.Height+1
}

// placementBudget is the number of origins drawn for one room before giving up.
func placementBudget(g *Grid) int {
	return max(minPlacementAttempts, attemptsPerCell*g.Width()*g.Height())
}

// placeRoom rejection-samples an origin for a width x height room that keeps
// clear of every room in placed, then opens all walls inside it.
func placeRoom(g *Grid, placed []Room, width, height int, rng Rand, budget int) (Room, error) {
	spanX := g.Width() - width - roomMargin
	spanY := g.Height() - height - roomMargin
	if spanX < 1 || spanY < 1 {
		return Room{}, fmt.Errorf("%w: %dx%d room does not fit a %dx%d grid",
			ErrRoomPlacementInfeasible, width, height, g.Width(), g.Height())
	}

	for attempt := 0; attempt < budget; attempt++ {
		candidate := Room{
			X:      1 + rng.Intn(spanX),
			Y:      1 + rng.Intn(spanY),
			Width:  width,
			Height: height,
		}
		if overlapsAny(candidate, placed) {
			continue
		}

		openRoom(g, candidate)
		return candidate, nil
	}

	return Room{}, fmt.Errorf("%w: no free %dx%d spot for room %d after %d attempts",
		ErrRoomPlacementInfeasible, width, height, len(placed)+1, budget)
}

func overlapsAny(candidate Room, placed []Room) bool {
	for _, r := range placed {
		if candidate.inflatedOverlaps(r) {
			return true
		}
	}
	return false
}

// openRoom clears all four walls of every cell in the room. Edges on the room
// boundary are cleared on the outside neighbour as well.
func openRoom(g *Grid, r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			cell := g.CellAt(x, y)
			for _, d := range Directions {
				g.OpenWall(cell, d)
			}
		}
	}
}

// placeRooms places count rooms in order and returns them.
func placeRooms(g *Grid, count, width, height int, rng Rand) ([]Room, error) {
	rooms := make([]Room, 0, count)
	budget := placementBudget(g)
	for i := 0; i < count; i++ {
		room, err := placeRoom(g, rooms, width, height, rng, budget)
		if err != nil {
			return rooms, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
