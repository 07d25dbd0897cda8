/*
Package maze generates rectangular grid mazes with pre-opened rooms.

A generation pass builds a fresh Grid with every wall closed, rejection-samples
a number of non-overlapping rooms and opens all walls inside them, then runs a
randomized depth-first backtracker from a start cell on the configured entry
side until every cell has been visited. Outside rooms the carved passages form
a tree; rooms add cycles on purpose.

The resulting wall and start flags are exposed per cell for renderers, and an
ASCII rendering is available through String.
*/
package maze

// Maze owns the configuration, the grid and the rooms of the latest generation pass.
type Maze struct {
	cfg   Config
	rng   Rand
	grid  *Grid
	rooms []Room
	start *Cell
}

// New validates cfg and returns a Maze that draws randomness from rng.
// Call Generate to build the layout.
func New(cfg Config, rng Rand) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Maze{
		cfg: cfg,
		rng: rng,
	}, nil
}

// Configure replaces the configuration used by the next Generate call.
// The current layout is kept until then.
func (m *Maze) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Generate discards the previous layout and builds a new one: rooms first,
// then the carving walk from the entry-side start cell.
// On error the maze holds no layout.
func (m *Maze) Generate() error {
	m.grid, m.rooms, m.start = nil, nil, nil

	if err := m.cfg.Validate(); err != nil {
		return err
	}

	grid := NewGrid(m.cfg.Width, m.cfg.Height)

	rooms, err := placeRooms(grid, m.cfg.RoomCount, m.cfg.RoomWidth, m.cfg.RoomHeight, m.rng)
	if err != nil {
		return err
	}

	start := grid.CellAt(m.cfg.startPosition())
	carve(grid, start, m.rng)

	m.grid, m.rooms, m.start = grid, rooms, start
	return nil
}

// Config returns the current configuration.
func (m *Maze) Config() Config {
	return m.cfg
}

// Grid returns the generated grid, or nil before a successful Generate.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// Rooms returns a copy of the rooms placed by the last pass, in placement order.
func (m *Maze) Rooms() []Room {
	return append([]Room(nil), m.rooms...)
}

// Start returns the start cell, or nil before a successful Generate.
func (m *Maze) Start() *Cell {
	return m.start
}

// Width returns the configured number of columns.
func (m *Maze) Width() int {
	return m.cfg.Width
}

// Height returns the configured number of rows.
func (m *Maze) Height() int {
	return m.cfg.Height
}

// InRoom reports whether (x, y) belongs to one of the placed rooms.
func (m *Maze) InRoom(x, y int) bool {
	for _, r := range m.rooms {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
