package maze

// Direction is one of the four orthogonal sides of a cell.
// The grid origin is the top-left corner, so North decreases y.
type Direction int

const (
	North Direction = iota // top
	South                  // bottom
	East                   // right
	West                   // left
)

// Directions lists every valid direction, indexed by its value.
var Directions = [4]Direction{North, South, East, West}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction facing d across a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of the neighbour in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
