package maze

import (
	"fmt"
	"strings"
)

// roomMargin is the number of cells subtracted from the grid size when sampling a
// room origin. It keeps rooms away from the border rows and columns the start
// cell is picked from.
const roomMargin = 3

// EntrySide is the border the start cell is taken from.
type EntrySide int

const (
	EntryRight EntrySide = iota
	EntryLeft
	EntryTop
	EntryBottom
)

var entryNames = map[EntrySide]string{
	EntryRight:  "right",
	EntryLeft:   "left",
	EntryTop:    "top",
	EntryBottom: "bottom",
}

func (e EntrySide) String() string {
	if name, ok := entryNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EntrySide(%d)", int(e))
}

// IsValid reports whether e is one of the four entry sides.
func (e EntrySide) IsValid() bool {
	_, ok := entryNames[e]
	return ok
}

// ParseEntrySide converts "left", "right", "top" or "bottom" (any case) to an EntrySide.
func ParseEntrySide(s string) (EntrySide, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for side, name := range entryNames {
		if name == s {
			return side, nil
		}
	}
	return 0, configErr("entry", "must be one of left, right, top, bottom (got %q)", s)
}

// Config holds the parameters of a generation pass.
type Config struct {
	Width      int       // Number of columns
	Height     int       // Number of rows
	RoomCount  int       // Number of rooms to pre-open
	RoomWidth  int       // Columns per room
	RoomHeight int       // Rows per room
	Entry      EntrySide // Border the start cell is taken from
}

// DefaultConfig returns a 100x100 maze with two 2x2 rooms entered from the right.
func DefaultConfig() Config {
	return Config{
		Width:      100,
		Height:     100,
		RoomCount:  2,
		RoomWidth:  2,
		RoomHeight: 2,
		Entry:      EntryRight,
	}
}

// Validate checks every field and returns a *ConfigurationError for the first bad one.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return configErr("width", "must be positive (got %d)", c.Width)
	}
	if c.Height <= 0 {
		return configErr("height", "must be positive (got %d)", c.Height)
	}
	if c.RoomCount < 0 {
		return configErr("room_count", "must not be negative (got %d)", c.RoomCount)
	}
	if !c.Entry.IsValid() {
		return configErr("entry", "unknown entry side %d", int(c.Entry))
	}
	if c.RoomCount == 0 {
		return nil
	}

	if c.RoomWidth <= 0 {
		return configErr("room_width", "must be positive (got %d)", c.RoomWidth)
	}
	if c.RoomHeight <= 0 {
		return configErr("room_height", "must be positive (got %d)", c.RoomHeight)
	}
	if c.Width-c.RoomWidth-roomMargin < 1 {
		return configErr("room_width", "%d does not fit a grid %d wide (at most %d)",
			c.RoomWidth, c.Width, c.Width-roomMargin-1)
	}
	if c.Height-c.RoomHeight-roomMargin < 1 {
		return configErr("room_height", "%d does not fit a grid %d high (at most %d)",
			c.RoomHeight, c.Height, c.Height-roomMargin-1)
	}

	return nil
}

// startPosition returns the start cell coordinates for the configured entry side.
func (c Config) startPosition() (x, y int) {
	switch c.Entry {
	case EntryLeft:
		return 0, c.Height / 2
	case EntryBottom:
		return c.Width / 2, c.Height - 1
	case EntryTop:
		return c.Width / 2, 0
	default:
		return c.Width - 1, c.Height / 2
	}
}
