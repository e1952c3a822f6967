package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// MoveRequest is a move as sent by a client: algebraic squares and an optional
// promotion kind.
type MoveRequest struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Promotion model.PieceType `json:"promotion,omitempty"`
}

// The connections watching a specific session
type SessionConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.Mutex
}

// Session holds the one current position of a game and the clients watching it.
// The position is replaced wholesale on every accepted move.
type Session struct {
	ID          string
	mu          sync.Mutex
	state       model.GameState
	connections *SessionConnections
}

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		state:       model.NewGame(),
		connections: &SessionConnections{connections: make(map[string]Conn)},
	}
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LegalMoves returns the legal moves from an algebraic square.
func (s *Session) LegalMoves(square string) ([]model.Move, error) {
	from, err := parseSquare(square)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	moves := s.state.LegalMoves(from)
	if moves == nil {
		moves = []model.Move{}
	}
	return moves, nil
}

func (s *Session) AllLegalMoves() []model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AllLegalMoves()
}

// MakeMove applies req to the current position. An illegal request still replaces
// the position with the engine's "Illegal move." snapshot so every client sees the
// rejection, and reports model.ErrIllegalMove.
func (s *Session) MakeMove(req MoveRequest) (model.GameState, error) {
	from, err := parseSquare(req.From)
	if err != nil {
		return model.GameState{}, err
	}
	to, err := parseSquare(req.To)
	if err != nil {
		return model.GameState{}, err
	}
	if req.Promotion != "" && !isPromotionType(req.Promotion) {
		return model.GameState{}, fmt.Errorf("%w: %q", ErrInvalidPromotion, req.Promotion)
	}

	// s.mu stays held through the broadcast so subscribers see states in the
	// order they were stored
	s.mu.Lock()
	defer s.mu.Unlock()

	move, ok := s.state.FindLegalMove(from, to, req.Promotion)
	if !ok {
		move = model.Move{From: from, To: to, Promotion: req.Promotion}
	}
	next, err := s.state.TryApply(move)
	s.state = next

	switch {
	case err != nil:
		log.Printf("[session %s] rejected %s-%s: %v", s.ID, req.From, req.To, err)
	case next.IsTerminal():
		log.Printf("[session %s] %s played %s, game over %s: %s", s.ID, next.LastMove().Piece.Color, next.LastMove().Notation, *next.Result, next.Status)
	default:
		log.Printf("[session %s] %s played %s, %s", s.ID, next.LastMove().Piece.Color, next.LastMove().Notation, next.Status)
	}
	s.broadcastState(next)
	return next, err
}

// Reset discards the current position and starts a new game.
func (s *Session) Reset() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = model.NewGame()
	log.Printf("[session %s] new game", s.ID)
	s.broadcastState(s.state)
	return s.state
}

func (s *Session) RegisterConnection(clientID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections.mu.Lock()
	if existing, exists := s.connections.connections[clientID]; exists {
		// the newer connection from the same client replaces the old one
		existing.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Replaced by a newer connection"),
		)
		existing.Close()
	}
	s.connections.connections[clientID] = conn
	s.connections.mu.Unlock()
	log.Printf("[session %s] registered connection for client %s", s.ID, clientID)

	s.broadcastState(s.state)
}

// UnregisterConnection removes conn if it is still the client's current one.
func (s *Session) UnregisterConnection(clientID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[clientID]; exists && current == conn {
		delete(s.connections.connections, clientID)
		log.Printf("[session %s] unregistered connection for client %s", s.ID, clientID)
	}
}

// Send writes msg to one client's connection.
func (s *Session) Send(clientID string, msg ws.Message) error {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	conn, exists := s.connections.connections[clientID]
	if !exists {
		return fmt.Errorf("client %s not connected to game %s", clientID, s.ID)
	}
	return conn.WriteJSON(msg)
}

// ConnectionCount returns the number of watching clients.
func (s *Session) ConnectionCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	return len(s.connections.connections)
}

// broadcastState sends state to every connection. Callers hold s.mu; writes are
// serialized by the connections mutex and failed connections are dropped.
func (s *Session) broadcastState(state model.GameState) {
	payload, err := json.Marshal(NewStateView(state))
	if err != nil {
		log.Printf("[session %s] failed to marshal state: %v", s.ID, err)
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for clientID, conn := range s.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("[session %s] failed to send state to client %s: %v", s.ID, clientID, err)
			delete(s.connections.connections, clientID)
		}
	}
}

func parseSquare(text string) (model.Square, error) {
	sq, err := model.ParseSquare(text)
	if err != nil {
		return model.Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return sq, nil
}

func isPromotionType(kind model.PieceType) bool {
	for _, t := range model.PromotionTypes {
		if t == kind {
			return true
		}
	}
	return false
}

// IsClientError reports whether err was caused by a malformed request.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSquare) || errors.Is(err, ErrInvalidPromotion)
}
