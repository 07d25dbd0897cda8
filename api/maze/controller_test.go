package mazeapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/room-maze/api"
	apii "github.com/beka-birhanu/room-maze/api/i"
	"github.com/beka-birhanu/room-maze/logger"
	"github.com/beka-birhanu/room-maze/maze"
	"github.com/beka-birhanu/room-maze/service"
	"github.com/beka-birhanu/room-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGenerator struct{}

func (failingGenerator) Generate(maze.Config, int64) (*i.Generation, error) {
	return nil, errors.New("boom")
}

func newTestHandler(t *testing.T, g i.MazeGenerator) http.Handler {
	t.Helper()
	if g == nil {
		log, err := logger.New("TEST", "", io.Discard)
		require.NoError(t, err)
		g, err = service.NewGenerator(log, &service.Options{MaxDimension: 50})
		require.NoError(t, err)
	}

	c, err := NewController(g)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		GinMode:     gin.TestMode,
		Controllers: []apii.Controller{c},
	})
	return router.Handler()
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGenerateMaze(t *testing.T) {
	h := newTestHandler(t, nil)

	t.Run("perfect maze", func(t *testing.T) {
		w := post(t, h, `{"width":5,"height":5,"entry":"right","seed":3}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Seed)
		assert.Equal(t, "right", resp.Entry)
		assert.Equal(t, Position{X: 4, Y: 2}, resp.Start)
		assert.Empty(t, resp.Rooms)
		require.Len(t, resp.Cells, 5)
		require.Len(t, resp.Cells[0], 5)
		assert.True(t, resp.Cells[2][4].Start)
		assert.Equal(t, 24, resp.Stats.OpenEdges)
		assert.Equal(t, 0, resp.Stats.Cycles)
	})

	t.Run("with a room", func(t *testing.T) {
		w := post(t, h, `{"width":10,"height":10,"room_count":1,"room_width":3,"room_height":3,"entry":"top","seed":8}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Rooms, 1)
		room := resp.Rooms[0]
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				c := resp.Cells[y][x]
				assert.False(t, c.North || c.South || c.East || c.West, "cell (%d,%d)", x, y)
			}
		}
		assert.Equal(t, Position{X: 5, Y: 0}, resp.Start)
		assert.GreaterOrEqual(t, resp.Stats.Cycles, 1)
	})

	t.Run("configuration error names the field", func(t *testing.T) {
		w := post(t, h, `{"width":10,"height":10,"room_count":1,"room_width":9,"room_height":2}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "room_width", resp.Field)
	})

	t.Run("service limit", func(t *testing.T) {
		w := post(t, h, `{"width":51,"height":10}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"width"`)
	})

	t.Run("unknown entry", func(t *testing.T) {
		w := post(t, h, `{"width":5,"height":5,"entry":"middle"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"entry"`)
	})

	t.Run("infeasible rooms", func(t *testing.T) {
		w := post(t, h, `{"width":10,"height":10,"room_count":2,"room_width":5,"room_height":5}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, h, `{"width":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing dimensions", func(t *testing.T) {
		w := post(t, h, `{"room_count":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenerateMazeInternalError(t *testing.T) {
	h := newTestHandler(t, failingGenerator{})

	w := post(t, h, `{"width":5,"height":5}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestASCIIMaze(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes/ascii?width=4&height=3&entry=left&seed=5", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.NotEmpty(t, w.Header().Get("X-Maze-Id"))

	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "| S "))
}

func TestNewControllerRequiresGenerator(t *testing.T) {
	_, err := NewController(nil)
	assert.Error(t, err)
}
