package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is the payload of an error message. Kind is empty for errors
// that are not move rejections.
type ErrorPayload struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewErrorMessage wraps msg and kind into an error message.
func NewErrorMessage(msg, kind string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: msg, Kind: kind})
	return Message{Type: MessageTypeError, Payload: payload}
}
