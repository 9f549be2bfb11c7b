package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	jsonenc "github.com/beka-birhanu/vinom-maze/game/json_encoder"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/web"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	gameSessionManager *service.GameSessionManager
	gameController     api_i.Controller
	jwtTokenizer       i.Tokenizer
	router             *api.Router
	appLogger          logger.Logger
)

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		MazeSize: config.Envs.MazeSize,
		MaxLevel: config.Envs.MaxLevel,
		MazeFactory: func() game.MazeFactory {
			return maze.Factory(maze.NewSource(0))
		},
		Logger: sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	secret := config.Envs.JWTSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			appLogger.Error(fmt.Sprintf("Generating JWT secret: %v", err))
			os.Exit(1)
		}
		secret = hex.EncodeToString(buf)
		appLogger.Warning("JWT_SECRET is not set, tokens will not survive a restart")
	}

	jwtTokenizer = token.NewJwtService(secret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initGameController() {
	controllerLogger, err := logger.New("GAME-API", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller logger: %v", err))
		os.Exit(1)
	}

	gameController, err = gameapi.NewGameController(gameapi.Config{
		Sessions:  gameSessionManager,
		Tokenizer: jwtTokenizer,
		Encoder:   &jsonenc.JSON{},
		Logger:    controllerLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{gameController},
		AuthorizationMiddleware: identity.Authoriz(t),
		Assets:                  web.Assets(),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	gin.SetMode(config.Envs.GinMode)

	initSessionManager()
	initJWTTokenizer()
	initGameController()
	initRouter(jwtTokenizer)

	if config.Envs.SweepSeconds > 0 {
		go gameSessionManager.RunSweeper(ctx,
			time.Duration(config.Envs.SweepSeconds)*time.Second,
			time.Duration(config.Envs.SessionIdleSeconds)*time.Second)
	}

	errs := make(chan error, 1)
	go func() { errs <- router.Run() }()

	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down")
	case err := <-errs:
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
