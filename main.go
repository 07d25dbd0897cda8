package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/room-maze/api"
	api_i "github.com/beka-birhanu/room-maze/api/i"
	mazeapi "github.com/beka-birhanu/room-maze/api/maze"
	"github.com/beka-birhanu/room-maze/config"
	"github.com/beka-birhanu/room-maze/logger"
	"github.com/beka-birhanu/room-maze/service"
	"github.com/beka-birhanu/room-maze/service/i"
)

// Global variables for dependencies
var (
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		l.Warning(fmt.Sprintf("Ignoring LOG_LEVEL %q: %v", config.Envs.LogLevel, err))
	}
	return l
}

func initMazeGenerator() {
	var err error
	mazeGenerator, err = service.NewGenerator(newLogger("GENERATOR", config.ColorCyan), &service.Options{
		MaxDimension: config.Envs.MaxMazeDimension,
		MaxRooms:     config.Envs.MaxRooms,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze generator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(mazeGenerator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)

	initMazeGenerator()
	initMazeController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
