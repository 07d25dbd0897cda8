// Command mazegen generates a maze and prints it as ASCII art.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/room-maze/maze"
	"github.com/gookit/color"
	"golang.org/x/term"
)

var (
	wallStyle  = color.Style{color.FgGreen}
	startStyle = color.Style{color.FgBlack, color.BgLightGreen, color.OpBold}
)

func main() {
	def := maze.DefaultConfig()
	width := flag.Int("width", 20, "number of columns")
	height := flag.Int("height", 20, "number of rows")
	rooms := flag.Int("rooms", def.RoomCount, "number of rooms")
	roomWidth := flag.Int("room-width", def.RoomWidth, "columns per room")
	roomHeight := flag.Int("room-height", def.RoomHeight, "rows per room")
	entry := flag.String("entry", def.Entry.String(), "entry side: left, right, top or bottom")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	plain := flag.Bool("plain", false, "disable colours")
	stats := flag.Bool("stats", false, "print connectivity counts after the maze")
	flag.Parse()

	side, err := maze.ParseEntrySide(*entry)
	if err != nil {
		exit(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	m, err := maze.New(maze.Config{
		Width:      *width,
		Height:     *height,
		RoomCount:  *rooms,
		RoomWidth:  *roomWidth,
		RoomHeight: *roomHeight,
		Entry:      side,
	}, rand.New(rand.NewSource(*seed)))
	if err != nil {
		exit(err)
	}
	if err := m.Generate(); err != nil {
		exit(err)
	}

	palette := maze.Palette{}
	if !*plain && term.IsTerminal(int(os.Stdout.Fd())) {
		palette = maze.Palette{
			Wall:  func(s string) string { return wallStyle.Sprint(s) },
			Start: func(s string) string { return startStyle.Sprint(s) },
		}
	}

	fmt.Print(m.Render(palette))
	fmt.Printf("seed %d\n", *seed)

	if *stats {
		s := m.Stats()
		fmt.Printf("cells %d, rooms %d (%d cells), open edges %d, components %d, cycles %d\n",
			s.Cells, s.Rooms, s.RoomCells, s.OpenEdges, s.Components, s.Cycles)
	}
}

func exit(err error) {
	var cfgErr *maze.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "mazegen: invalid -%s: %s\n", flagName(cfgErr.Field), cfgErr.Reason)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
	os.Exit(1)
}

// flagName maps a configuration field to the flag that sets it.
func flagName(field string) string {
	switch field {
	case "room_count":
		return "rooms"
	case "room_width":
		return "room-width"
	case "room_height":
		return "room-height"
	default:
		return field
	}
}
