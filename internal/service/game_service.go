package service

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, model.GameState) {
	session := gs.gameManager.CreateGame()
	return session.ID, session.State()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.State(), nil
}

func (gs *GameService) LegalMoves(gameID string, square string) ([]model.Move, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMoves(square)
}

func (gs *GameService) AllLegalMoves(gameID string) ([]model.Move, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.AllLegalMoves(), nil
}

// HandleMove applies a move. On model.ErrIllegalMove the returned state is the
// session's new "Illegal move." snapshot.
func (gs *GameService) HandleMove(gameID string, move MoveRequest) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	state, err := session.MakeMove(move)
	if err != nil {
		return state, fmt.Errorf("game %s: %w", gameID, err)
	}
	return state, nil
}

func (gs *GameService) NewGame(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Reset(), nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn Conn) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	session.RegisterConnection(clientID, conn)
	return nil
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn Conn) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(clientID, conn)
}

func (gs *GameService) SendTo(gameID string, clientID string, msg ws.Message) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.Send(clientID, msg)
}
