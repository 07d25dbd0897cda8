package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/room-maze/maze"
	"github.com/beka-birhanu/room-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Controller serves maze generation requests.
type Controller struct {
	generator i.MazeGenerator
}

// NewController initializes a Controller.
func NewController(g i.MazeGenerator) (*Controller, error) {
	if g == nil {
		return nil, errors.New("maze generator is required")
	}
	return &Controller{generator: g}, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.generate)
		mazes.GET("/ascii", c.ascii)
	}
}

// generate handles JSON generation requests.
func (c *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gen, ok := c.run(ctx, request)
	if !ok {
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(gen))
}

// ascii handles query-string generation requests and answers with plain text.
func (c *Controller) ascii(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gen, ok := c.run(ctx, request)
	if !ok {
		return
	}

	ctx.Header("X-Maze-Id", gen.ID.String())
	ctx.String(http.StatusOK, gen.Maze.String())
}

// run generates the maze and writes the error response when it fails.
func (c *Controller) run(ctx *gin.Context, request GenerateRequest) (*i.Generation, bool) {
	cfg, err := request.config()
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}

	gen, err := c.generator.Generate(cfg, request.Seed)
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}

	return gen, true
}

func writeError(ctx *gin.Context, err error) {
	var cfgErr *maze.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: cfgErr.Field})
	case errors.Is(err, maze.ErrRoomPlacementInfeasible):
		ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "error while generating maze"})
	}
}
