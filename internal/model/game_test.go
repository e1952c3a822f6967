package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGame(t *testing.T) {
	state := NewGame()

	if state.ToMove != White {
		t.Errorf("NewGame().ToMove = %v, want white", state.ToMove)
	}
	if diff := cmp.Diff(AllCastlingRights, state.Castling); diff != "" {
		t.Errorf("NewGame().Castling mismatch (-want +got):\n%s", diff)
	}
	if state.EnPassantTarget != nil {
		t.Errorf("NewGame().EnPassantTarget = %v, want nil", state.EnPassantTarget)
	}
	if state.HalfmoveClock != 0 || state.FullmoveNumber != 1 {
		t.Errorf("NewGame() clocks = %d/%d, want 0/1", state.HalfmoveClock, state.FullmoveNumber)
	}
	if len(state.History) != 0 {
		t.Errorf("len(NewGame().History) = %d, want 0", len(state.History))
	}
	if state.Result != nil {
		t.Errorf("NewGame().Result = %v, want nil", *state.Result)
	}
	if state.Status != "White to move." {
		t.Errorf("NewGame().Status = %q, want %q", state.Status, "White to move.")
	}
	if state.Condition != Ongoing {
		t.Errorf("NewGame().Condition = %q, want %q", state.Condition, Ongoing)
	}
}

func TestAllLegalMovesInitialPosition(t *testing.T) {
	state := NewGame()
	moves := state.AllLegalMoves()
	if len(moves) != 20 {
		t.Fatalf("len(AllLegalMoves()) = %d, want 20", len(moves))
	}
	pawnMoves, knightMoves := 0, 0
	for _, move := range moves {
		switch state.Board.At(move.From).Type {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("pawn/knight moves = %d/%d, want 16/4", pawnMoves, knightMoves)
	}
}

func TestLegalMovesWrongSideOrEmpty(t *testing.T) {
	state := NewGame()
	for _, square := range []string{"e4", "e7", "g8"} {
		if moves := state.LegalMoves(sq(square)); len(moves) != 0 {
			t.Errorf("LegalMoves(%s) = %v, want none", square, moves)
		}
	}
	want := []Move{mv("g1", "h3"), mv("g1", "f3")}
	if diff := cmp.Diff(want, state.LegalMoves(sq("g1"))); diff != "" {
		t.Errorf("LegalMoves(g1) mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyIllegalMoveLeavesPositionUnchanged(t *testing.T) {
	state := play(t, NewGame(), "e2e4")
	bad := mv("e7", "e4")

	first := state.Apply(bad)
	want := state
	want.Status = StatusIllegalMove
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("Apply(illegal) mismatch (-want +got):\n%s", diff)
	}
	second := first.Apply(bad)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Apply(illegal) replay mismatch (-want +got):\n%s", diff)
	}

	if _, err := state.TryApply(bad); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("TryApply(illegal) error = %v, want ErrIllegalMove", err)
	}
	recovered := first.Apply(mv("e7", "e5"))
	if recovered.Status != "White to move." {
		t.Errorf("status after legal reply = %q, want %q", recovered.Status, "White to move.")
	}
}

func TestApplyDoesNotModifyPreviousSnapshot(t *testing.T) {
	start := NewGame()
	afterE4 := start.Apply(mv("e2", "e4"))

	if start.Board.At(sq("e2")) == nil || start.Board.At(sq("e4")) != nil {
		t.Errorf("starting board changed after Apply:\n%s", start.Board)
	}
	if len(start.History) != 0 || start.ToMove != White {
		t.Errorf("starting snapshot changed: history %d, to move %s", len(start.History), start.ToMove)
	}

	// two continuations from one snapshot must not share history storage
	a := afterE4.Apply(mv("e7", "e5"))
	b := afterE4.Apply(mv("d7", "d5"))
	if a.History[1].Notation != "e5" || b.History[1].Notation != "d5" {
		t.Errorf("history notations = %q/%q, want e5/d5", a.History[1].Notation, b.History[1].Notation)
	}
	if len(afterE4.History) != 1 {
		t.Errorf("len(afterE4.History) = %d, want 1", len(afterE4.History))
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	board := NewBoard()
	clone := board.Clone()
	clone.Put(sq("e2"), nil)
	clone.Put(sq("e4"), &Piece{Type: Pawn, Color: White})

	if board.At(sq("e2")) == nil || board.At(sq("e4")) != nil {
		t.Errorf("mutating a clone changed the original:\n%s", board)
	}
}

func TestClocks(t *testing.T) {
	state := play(t, NewGame(), "g1f3")
	if state.HalfmoveClock != 1 || state.FullmoveNumber != 1 {
		t.Errorf("after Nf3 clocks = %d/%d, want 1/1", state.HalfmoveClock, state.FullmoveNumber)
	}
	state = play(t, state, "g8f6")
	if state.HalfmoveClock != 2 || state.FullmoveNumber != 2 {
		t.Errorf("after Nf6 clocks = %d/%d, want 2/2", state.HalfmoveClock, state.FullmoveNumber)
	}
	state = play(t, state, "e2e4")
	if state.HalfmoveClock != 0 {
		t.Errorf("after pawn move halfmove = %d, want 0", state.HalfmoveClock)
	}
	state = play(t, state, "f6e4")
	if state.HalfmoveClock != 0 {
		t.Errorf("after capture halfmove = %d, want 0", state.HalfmoveClock)
	}
}

func TestScholarsMate(t *testing.T) {
	state := play(t, NewGame(), "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	if state.Result == nil || *state.Result != WhiteWins {
		t.Fatalf("Result = %v, want 1-0", state.Result)
	}
	if state.Condition != Checkmate || !state.IsCheck {
		t.Errorf("Condition/IsCheck = %s/%v, want checkmate/true", state.Condition, state.IsCheck)
	}
	if state.Status != "Checkmate. White wins." {
		t.Errorf("Status = %q, want %q", state.Status, "Checkmate. White wins.")
	}
	if !state.IsTerminal() {
		t.Error("IsTerminal() after mate = false, want true")
	}
	if moves := state.AllLegalMoves(); len(moves) != 0 {
		t.Errorf("AllLegalMoves() after mate = %v, want none", moves)
	}

	var notation []string
	for _, ply := range state.History {
		notation = append(notation, ply.Notation)
	}
	want := []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}
	if diff := cmp.Diff(want, notation); diff != "" {
		t.Errorf("notation mismatch (-want +got):\n%s", diff)
	}

	after := state.Apply(mv("e8", "f7"))
	if after.Status != StatusIllegalMove || after.Result == nil || *after.Result != WhiteWins {
		t.Errorf("move after mate: status %q result %v, want illegal and 1-0 kept", after.Status, after.Result)
	}
}

func TestFoolsMate(t *testing.T) {
	state := play(t, NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")
	if state.Result == nil || *state.Result != BlackWins {
		t.Fatalf("Result = %v, want 0-1", state.Result)
	}
	if state.Status != "Checkmate. Black wins." {
		t.Errorf("Status = %q, want %q", state.Status, "Checkmate. Black wins.")
	}
}

func TestCheckWithoutMate(t *testing.T) {
	state := play(t, NewGame(), "e2e4", "e7e5", "d1h5", "b8c6", "h5f7")
	if state.Condition != Check || !state.IsCheck || state.Result != nil {
		t.Fatalf("Condition/IsCheck/Result = %s/%v/%v, want check/true/nil", state.Condition, state.IsCheck, state.Result)
	}
	if state.Status != "Black to move. Check!" {
		t.Errorf("Status = %q, want %q", state.Status, "Black to move. Check!")
	}
	if state.IsTerminal() {
		t.Error("IsTerminal() while in check = true, want false")
	}
	if got := state.LastMove().Notation; got != "Qxf7+" {
		t.Errorf("LastMove().Notation = %q, want Qxf7+", got)
	}
	want := []Move{mv("e8", "f7")}
	if diff := cmp.Diff(want, state.AllLegalMoves()); diff != "" {
		t.Errorf("AllLegalMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestStalemate(t *testing.T) {
	board := boardFromRows(t,
		"k.K.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".Q......",
	)
	state := NewGameFromBoard(board, White, CastlingRights{}, nil)
	state = play(t, state, "b1b6")

	if state.Result == nil || *state.Result != Draw {
		t.Fatalf("Result = %v, want 1/2-1/2", state.Result)
	}
	if state.Condition != Stalemate || state.IsCheck {
		t.Errorf("Condition/IsCheck = %s/%v, want stalemate/false", state.Condition, state.IsCheck)
	}
	if state.Status != "Stalemate. Draw." {
		t.Errorf("Status = %q, want %q", state.Status, "Stalemate. Draw.")
	}
	if !state.IsTerminal() {
		t.Error("IsTerminal() after stalemate = false, want true")
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	board := boardFromRows(t,
		"....k...",
		"....r...",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"....K...",
	)
	state := NewGameFromBoard(board, White, CastlingRights{}, nil)
	if moves := state.LegalMoves(sq("e2")); len(moves) != 0 {
		t.Errorf("LegalMoves(pinned e2) = %v, want none", moves)
	}
}

func TestMovePairsAndCapturedPieces(t *testing.T) {
	state := play(t, NewGame(), "e2e4", "d7d5", "e4d5", "d8d5", "b1c3")

	pairs := state.MovePairs()
	if len(pairs) != 3 {
		t.Fatalf("len(MovePairs()) = %d, want 3", len(pairs))
	}
	if pairs[1].Number != 2 || pairs[1].WhitePly.Notation != "exd5" || pairs[1].BlackPly.Notation != "Qxd5" {
		t.Errorf("pair 2 = %d %q %q, want 2 exd5 Qxd5", pairs[1].Number, pairs[1].WhitePly.Notation, pairs[1].BlackPly.Notation)
	}
	if pairs[2].BlackPly != nil {
		t.Errorf("pair 3 black ply = %v, want nil", pairs[2].BlackPly)
	}

	want := CapturedPieces{
		White: []Piece{{Type: Pawn, Color: Black}},
		Black: []Piece{{Type: Pawn, Color: White}},
	}
	if diff := cmp.Diff(want, state.CapturedPieces()); diff != "" {
		t.Errorf("CapturedPieces() mismatch (-want +got):\n%s", diff)
	}
}

func TestMovePairsBlackFirst(t *testing.T) {
	board := boardFromRows(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K...",
	)
	state := NewGameFromBoard(board, Black, CastlingRights{}, nil)
	state = play(t, state, "e8d8", "a1a8")

	pairs := state.MovePairs()
	if len(pairs) != 2 {
		t.Fatalf("len(MovePairs()) = %d, want 2", len(pairs))
	}
	if pairs[0].WhitePly != nil || pairs[0].BlackPly == nil || pairs[0].Number != 1 {
		t.Errorf("first pair = %+v, want black-only move 1", pairs[0])
	}
	if pairs[1].Number != 2 || pairs[1].WhitePly.Notation != "Ra8+" {
		t.Errorf("second pair = %d %q, want 2 Ra8+", pairs[1].Number, pairs[1].WhitePly.Notation)
	}
}
