package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api/game and the state socket under
// /ws/game/:gameId.
func SetupRoutes(app *fiber.App, cfg config.Config, gc *GameController, wsc *WebSocketController) {
	app.Get("/ws/game/:gameId",
		middleware.EnsureClientID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsc.HandleConnection, websocket.Config{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			Origins:         cfg.AllowedOrigins,
		}),
	)

	gameRoutes := app.Group("/api/game")
	gameRoutes.Post("/create", gc.CreateGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Delete("/:gameId", gc.DeleteGame)
	gameRoutes.Get("/:gameId/moves", gc.AllLegalMoves)
	gameRoutes.Get("/:gameId/moves/:square", gc.LegalMoves)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
	gameRoutes.Post("/:gameId/new", gc.NewGame)
}
