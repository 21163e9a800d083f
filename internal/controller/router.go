package controller

import (
	"strings"

	"github.com/benbeisheim/rulechess-backend/internal/config"
	"github.com/benbeisheim/rulechess-backend/internal/middleware"
	"github.com/benbeisheim/rulechess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

// NewApp builds the fiber application with every REST and WebSocket route.
func NewApp(gameService *service.GameService, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "rulechess",
		Immutable: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		log.Debugf("WebSocket connection established for game: %s", c.Params("gameId"))
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  cfg.WSBufferSize,
		WriteBufferSize: cfg.WSBufferSize,
		Origins:         cfg.AllowedOrigins,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Get("/:gameId/score/:team", gameController.GetScore)

	return app
}
