package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefaults(t *testing.T) {
	t.Run("unset keys fall back", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("ROOM_MAZE_TEST_UNSET", "fallback"))
		assert.Equal(t, 17, getEnvAsIntWithDefault("ROOM_MAZE_TEST_UNSET", 17))
	})

	t.Run("set keys win", func(t *testing.T) {
		t.Setenv("ROOM_MAZE_TEST_STR", "debug")
		t.Setenv("ROOM_MAZE_TEST_INT", "120")

		assert.Equal(t, "debug", getEnvWithDefault("ROOM_MAZE_TEST_STR", "release"))
		assert.Equal(t, 120, getEnvAsIntWithDefault("ROOM_MAZE_TEST_INT", 200))
	})

	t.Run("loaded config", func(t *testing.T) {
		cfg := initConfig()
		assert.Positive(t, cfg.MaxMazeDimension)
		assert.Positive(t, cfg.MaxRooms)
		assert.NotEmpty(t, cfg.GinMode)
	})
}
