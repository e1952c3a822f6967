package service

import "github.com/benbeisheim/chessrules-backend/internal/model"

// StateView is the state sent to clients: the position plus the derived move
// list, captured pieces and last move the board view needs.
type StateView struct {
	model.GameState
	MovePairs      []model.MovePair     `json:"movePairs"`
	CapturedPieces model.CapturedPieces `json:"capturedPieces"`
	LastMove       *model.Ply           `json:"lastMove"`
}

func NewStateView(state model.GameState) StateView {
	return StateView{
		GameState:      state,
		MovePairs:      state.MovePairs(),
		CapturedPieces: state.CapturedPieces(),
		LastMove:       state.LastMove(),
	}
}
