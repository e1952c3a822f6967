package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages a game socket carries
type MessageType string

const (
	// client -> server
	MessageTypeMove       MessageType = "move"
	MessageTypeNewGame    MessageType = "newGame"
	MessageTypeLegalMoves MessageType = "legalMoves"

	// server -> client
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// LegalMovesRequest asks for the legal moves from one square.
type LegalMovesRequest struct {
	Square string `json:"square"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
