package i

import (
	"github.com/beka-birhanu/room-maze/maze"
	"github.com/google/uuid"
)

// Generation is the outcome of one successful generation pass.
type Generation struct {
	ID   uuid.UUID  // Identifier assigned to this pass
	Seed int64      // Seed that reproduces the layout with the same config
	Maze *maze.Maze // Generated maze, ready to render
}

// MazeGenerator validates a configuration and produces a generated maze.
type MazeGenerator interface {
	// Generate builds a maze for cfg. A zero seed lets the generator choose one.
	Generate(cfg maze.Config, seed int64) (*Generation, error)
}
