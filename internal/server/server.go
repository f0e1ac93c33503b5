// Package server exposes rules engine games over HTTP and WebSocket. Each
// session holds one engine.Game; access to a game is serialised per
// session.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// New builds the application and its session registry.
func New(cfg *config.Config) (*fiber.App, *Manager) {
	games := NewManager(cfg.Server.MaxGames)
	h := &handler{
		games:   games,
		log:     cfg.Logger("chessd: "),
		verbose: cfg.Verbose(2),
	}

	app := fiber.New(fiber.Config{
		AppName:               "chessd",
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.Verbose(1) && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	api := app.Group("/api")
	gameRoutes := api.Group("/games")
	gameRoutes.Post("/", h.createGame)
	gameRoutes.Get("/", h.listGames)
	gameRoutes.Get("/:id", h.getGame)
	gameRoutes.Delete("/:id", h.deleteGame)
	gameRoutes.Get("/:id/moves", h.legalMoves)
	gameRoutes.Post("/:id/moves", h.playMove)
	gameRoutes.Post("/:id/undo", h.undo)
	gameRoutes.Post("/:id/reset", h.reset)

	app.Use("/ws/games/:id", h.requireUpgrade)
	app.Get("/ws/games/:id", websocket.New(h.handleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return app, games
}
