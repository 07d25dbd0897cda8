// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/room-maze/maze"
	"github.com/beka-birhanu/room-maze/service/i"
	"github.com/google/uuid"
)

// GenerateRequest carries the generation parameters, from a JSON body or a query string.
type GenerateRequest struct {
	Width      int    `json:"width" form:"width" binding:"required"`
	Height     int    `json:"height" form:"height" binding:"required"`
	RoomCount  int    `json:"room_count" form:"room_count"`
	RoomWidth  int    `json:"room_width" form:"room_width"`
	RoomHeight int    `json:"room_height" form:"room_height"`
	Entry      string `json:"entry" form:"entry"`
	Seed       int64  `json:"seed" form:"seed"`
}

// config converts the request into a maze.Config. An empty entry means right.
func (r GenerateRequest) config() (maze.Config, error) {
	entry := maze.EntryRight
	if r.Entry != "" {
		var err error
		if entry, err = maze.ParseEntrySide(r.Entry); err != nil {
			return maze.Config{}, err
		}
	}

	return maze.Config{
		Width:      r.Width,
		Height:     r.Height,
		RoomCount:  r.RoomCount,
		RoomWidth:  r.RoomWidth,
		RoomHeight: r.RoomHeight,
		Entry:      entry,
	}, nil
}

// Position is a cell coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomResponse describes a placed room.
type RoomResponse struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CellResponse holds what a renderer needs to draw one cell.
type CellResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
	Start bool `json:"start,omitempty"`
}

// MazeResponse is the generated maze. Cells are indexed [y][x].
type MazeResponse struct {
	ID     uuid.UUID        `json:"id"`
	Seed   int64            `json:"seed"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Entry  string           `json:"entry"`
	Start  Position         `json:"start"`
	Rooms  []RoomResponse   `json:"rooms"`
	Cells  [][]CellResponse `json:"cells"`
	Stats  maze.Stats       `json:"stats"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func newMazeResponse(gen *i.Generation) *MazeResponse {
	m := gen.Maze
	g := m.Grid()

	cells := make([][]CellResponse, g.Height())
	for y := range cells {
		cells[y] = make([]CellResponse, g.Width())
		for x := range cells[y] {
			c := g.CellAt(x, y)
			cells[y][x] = CellResponse{
				North: c.HasNorthWall(),
				South: c.HasSouthWall(),
				East:  c.HasEastWall(),
				West:  c.HasWestWall(),
				Start: c.IsStart(),
			}
		}
	}

	rooms := make([]RoomResponse, 0, len(m.Rooms()))
	for _, r := range m.Rooms() {
		rooms = append(rooms, RoomResponse{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height})
	}

	return &MazeResponse{
		ID:     gen.ID,
		Seed:   gen.Seed,
		Width:  g.Width(),
		Height: g.Height(),
		Entry:  m.Config().Entry.String(),
		Start:  Position{X: m.Start().X, Y: m.Start().Y},
		Rooms:  rooms,
		Cells:  cells,
		Stats:  m.Stats(),
	}
}
