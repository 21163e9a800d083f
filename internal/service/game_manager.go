// service/game_manager.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/rulechess-backend/internal/model"
	"github.com/benbeisheim/rulechess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrNotSeated           = errors.New("player is not seated in this game")
	ErrNotAuthorized       = errors.New("not authorized to join this game")
	ErrDuplicateConnection = errors.New("connection already exists")
)

// StateWriter is the part of a websocket connection the manager pushes state to.
type StateWriter interface {
	WriteJSON(v interface{}) error
}

// The connections for a specific game
type gameConnections struct {
	connections map[string]StateWriter // playerID -> connection
	mu          sync.RWMutex
}

// session pairs one rules engine with its seats and observers. mu is held for
// the whole of every read or move, including the resulting broadcast, so a
// game only ever sees one mutator. Lock order is mu, then connections.mu.
type session struct {
	mu          sync.Mutex
	game        *model.Game
	players     model.Players
	connections *gameConnections
}

func (s *session) state() model.GameState {
	state := s.game.State()
	state.Players = s.players
	return state
}

type GameManager struct {
	games map[string]*session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*session),
	}
}

// CreateGame registers a new game started from placement and returns its ID.
func (gm *GameManager) CreateGame(placement model.Board) (string, error) {
	if err := placement.Validate(); err != nil {
		return "", err
	}

	gameID := uuid.New().String()

	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.games[gameID] = &session{
		game: model.NewGame(placement),
		connections: &gameConnections{
			connections: make(map[string]StateWriter),
		},
	}
	log.Infof("created game %s with %d pieces", gameID, len(placement))
	return gameID, nil
}

func (gm *GameManager) getSession(gameID string) (*session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%s: %w", gameID, ErrGameNotFound)
	}
	return s, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(), nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Team, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.players.Seat(playerID)
	if err != nil {
		return "", err
	}
	log.Infof("player %s seated as %s in game %s", playerID, team, gameID)
	return team, nil
}

// MakeMove applies move on behalf of a seated player and pushes the resulting
// state to every connection watching the game.
func (gm *GameManager) MakeMove(gameID string, playerID string, move model.MoveRequest) (model.GameState, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seated := s.players.TeamOf(playerID); !seated {
		return model.GameState{}, ErrNotSeated
	}
	if err := s.game.Move(move.From, move.To); err != nil {
		log.Debugf("game %s: rejected %s-%s: %v", gameID, move.From, move.To, err)
		return model.GameState{}, err
	}
	state := s.state()

	log.Infof("game %s: %s played %s", gameID, playerID, state.MoveHistory[len(state.MoveHistory)-1].Notation)
	if winner := state.Winner; !state.KingsAlive && winner != nil {
		log.Infof("game %s: %s king captured, %s wins", gameID, winner.Opposite(), *winner)
	}

	// Broadcast before releasing the session so observers receive states in
	// move order.
	s.broadcast(state)
	return state, nil
}

func (gm *GameManager) Score(gameID string, team model.Team) (float64, error) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CalculateScore(team), nil
}

// RegisterConnection attaches conn to the game's broadcast list and sends it
// the current state. Seated players and, while a seat is open, spectators may attach.
func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn StateWriter) error {
	s, err := gm.getSession(gameID)
	if err != nil {
		return err
	}

	// Held through the initial write so no broadcast can overtake it.
	s.mu.Lock()
	defer s.mu.Unlock()

	_, seated := s.players.TeamOf(playerID)
	if !seated && !s.players.HasOpenSeat() {
		return ErrNotAuthorized
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		return ErrDuplicateConnection
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Debugf("registered connection for player %s in game %s", playerID, gameID)

	if err := writeState(conn, s.state()); err != nil {
		log.Warnf("initial state to player %s failed: %v", playerID, err)
	}
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	s, err := gm.getSession(gameID)
	if err != nil {
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	delete(s.connections.connections, playerID)
	log.Debugf("unregistered connection for player %s in game %s", playerID, gameID)
}

// broadcast sends state to every connection, dropping those that fail.
func (s *session) broadcast(state model.GameState) {
	// Get a snapshot of connections under the connections mutex
	s.connections.mu.RLock()
	activeConnections := make(map[string]StateWriter, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		activeConnections[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := writeState(conn, state); err != nil {
			log.Warnf("failed to send state to player %s: %v", playerID, err)
			s.connections.mu.Lock()
			delete(s.connections.connections, playerID)
			s.connections.mu.Unlock()
		}
	}
}

func writeState(conn StateWriter, state model.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	})
}
