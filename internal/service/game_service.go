package service

import (
	"fmt"

	"github.com/benbeisheim/rulechess-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(placement model.Board) (string, error) {
	gameID, err := gs.gameManager.CreateGame(placement)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Team, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.MoveRequest) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) Score(gameID string, team model.Team) (float64, error) {
	return gs.gameManager.Score(gameID, team)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn StateWriter) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}
