package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"width":       "width",
		"height":      "height",
		"room_count":  "rooms",
		"room_width":  "room-width",
		"room_height": "room-height",
		"entry":       "entry",
	}
	for field, want := range tests {
		assert.Equal(t, want, flagName(field), field)
	}
}
