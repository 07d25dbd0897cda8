package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/room-maze/maze"
	"github.com/beka-birhanu/room-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
	defaultMaxRooms     = 64
)

// Options configures a Generator. Zero values fall back to the defaults.
type Options struct {
	MaxDimension int          // Largest accepted width or height
	MaxRooms     int          // Largest accepted room count
	Seeder       func() int64 // Supplies a seed when the caller passes zero
}

// Generator enforces service limits and runs maze generation passes.
type Generator struct {
	logger i.Logger
	opts   *Options
}

// NewGenerator creates a Generator that reports to logger.
func NewGenerator(logger i.Logger, opts *Options) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("generator logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.MaxRooms <= 0 {
		opts.MaxRooms = defaultMaxRooms
	}

	if opts.Seeder == nil {
		opts.Seeder = func() int64 { return time.Now().UnixNano() }
	}

	return &Generator{
		logger: logger,
		opts:   opts,
	}, nil
}

var _ i.MazeGenerator = &Generator{}

// Generate implements i.MazeGenerator.
func (g *Generator) Generate(cfg maze.Config, seed int64) (*i.Generation, error) {
	if err := g.checkLimits(cfg); err != nil {
		g.logger.Warning(fmt.Sprintf("Rejected maze request: %v", err))
		return nil, err
	}

	if seed == 0 {
		seed = g.opts.Seeder()
	}

	m, err := maze.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		g.logger.Warning(fmt.Sprintf("Rejected maze request: %v", err))
		return nil, err
	}

	started := time.Now()
	if err := m.Generate(); err != nil {
		g.logger.Error(fmt.Sprintf("Generating %dx%d maze with %d rooms (seed %d): %v",
			cfg.Width, cfg.Height, cfg.RoomCount, seed, err))
		return nil, err
	}

	generation := &i.Generation{
		ID:   uuid.New(),
		Seed: seed,
		Maze: m,
	}
	g.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Rooms=%d Entry=%s Seed=%d Took=%s",
		generation.ID, cfg.Width, cfg.Height, len(m.Rooms()), cfg.Entry, seed, time.Since(started)))

	return generation, nil
}

// checkLimits rejects configurations larger than the service is willing to build.
func (g *Generator) checkLimits(cfg maze.Config) error {
	if cfg.Width > g.opts.MaxDimension {
		return &maze.ConfigurationError{Field: "width", Reason: fmt.Sprintf("must be at most %d (got %d)", g.opts.MaxDimension, cfg.Width)}
	}
	if cfg.Height > g.opts.MaxDimension {
		return &maze.ConfigurationError{Field: "height", Reason: fmt.Sprintf("must be at most %d (got %d)", g.opts.MaxDimension, cfg.Height)}
	}
	if cfg.RoomCount > g.opts.MaxRooms {
		return &maze.ConfigurationError{Field: "room_count", Reason: fmt.Sprintf("must be at most %d (got %d)", g.opts.MaxRooms, cfg.RoomCount)}
	}
	return nil
}
