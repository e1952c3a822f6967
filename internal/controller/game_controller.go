package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, state := gc.gameService.CreateGame()
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"state":   service.NewStateView(state),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(service.NewStateView(state))
}

// LegalMoves returns the legal moves from the :square param.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), c.Params("square"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

func (gc *GameController) AllLegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.AllLegalMoves(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"moves": moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	state, err := gc.gameService.HandleMove(c.Params("gameId"), req)
	if errors.Is(err, model.ErrIllegalMove) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
			"state": service.NewStateView(state),
		})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(service.NewStateView(state))
}

// NewGame discards the game's position and starts over.
func (gc *GameController) NewGame(c *fiber.Ctx) error {
	state, err := gc.gameService.NewGame(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(service.NewStateView(state))
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case service.IsClientError(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, model.ErrIllegalMove):
		status = fiber.StatusUnprocessableEntity
	default:
		log.Printf("[api] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
