package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/rulechess-backend/internal/model"
	"github.com/benbeisheim/rulechess-backend/internal/service"
	"github.com/benbeisheim/rulechess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serializes writes; broadcasts and error replies come from
// different goroutines.
type lockedConn struct {
	mu   sync.Mutex
	conn service.StateWriter
}

func (l *lockedConn) WriteJSON(v interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	// Extract game ID and player ID from context
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	conn := &lockedConn{conn: c}

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Warnf("failed to register connection for player %s in game %s: %v", playerID, gameID, err)
		conn.WriteJSON(ws.NewErrorMessage(err.Error(), ""))
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error for player %s: %v", playerID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error: %v", err)
			conn.WriteJSON(ws.NewErrorMessage("malformed message", ""))
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			conn.WriteJSON(ws.NewErrorMessage(err.Error(), model.ErrorKind(err)))
		}
	}
}

// Handle different types of incoming messages. A successful move reaches every
// connection, this one included, through the game's broadcast.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
