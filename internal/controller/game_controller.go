package controller

import (
	"errors"

	"github.com/benbeisheim/rulechess-backend/internal/model"
	"github.com/benbeisheim/rulechess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Board model.Board `json:"board"`
}

// errorStatus maps service and rules errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrGameFull):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotSeated), errors.Is(err, service.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrOutOfBounds), errors.Is(err, model.ErrInvalidPiece):
		return fiber.StatusBadRequest
	case model.ErrorKind(err) != "":
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, status int, err error) error {
	body := fiber.Map{"error": err.Error()}
	if kind := model.ErrorKind(err); kind != "" {
		body["kind"] = kind
	}
	return c.Status(status).JSON(body)
}

// badBody answers a request whose body did not decode. Coordinate and piece
// validation failures keep their kind.
func badBody(c *fiber.Ctx, err error) error {
	if model.ErrorKind(err) != "" {
		return respondError(c, errorStatus(err), err)
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body",
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}

	gameID, err := gc.gameService.CreateGame(req.Board)
	if err != nil {
		return respondError(c, errorStatus(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	team, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return respondError(c, errorStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"team":    team,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return respondError(c, errorStatus(err), err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return badBody(c, err)
	}

	gameState, err := gc.gameService.HandleMove(gameID, playerID, move)
	if err != nil {
		return respondError(c, errorStatus(err), err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetScore(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	team, err := model.ParseTeam(c.Params("team"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, err)
	}

	score, err := gc.gameService.Score(gameID, team)
	if err != nil {
		return respondError(c, errorStatus(err), err)
	}
	return c.JSON(fiber.Map{
		"team":  team,
		"score": score,
	})
}
