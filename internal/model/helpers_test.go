package model

import "testing"

// boardFromRows builds a board from eight rows of glyphs, rank 8 first; '.' is an
// empty square.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("boardFromRows: got %d rows, want 8", len(rows))
	}
	var board Board
	for rank, row := range rows {
		if len(row) != 8 {
			t.Fatalf("boardFromRows: row %d has %d squares, want 8", rank, len(row))
		}
		for file, r := range row {
			if r == '.' {
				continue
			}
			piece, ok := pieceForGlyph(r)
			if !ok {
				t.Fatalf("boardFromRows: unknown glyph %q", r)
			}
			board[rank][file] = &piece
		}
	}
	return board
}

func sq(text string) Square {
	return MustParseSquare(text)
}

func mv(from, to string) Move {
	return Move{From: sq(from), To: sq(to)}
}

// play applies moves given as "e2e4" pairs and fails on the first illegal one.
func play(t *testing.T, state GameState, moves ...string) GameState {
	t.Helper()
	for _, text := range moves {
		from, to := sq(text[:2]), sq(text[2:4])
		move, ok := state.FindLegalMove(from, to, "")
		if !ok {
			t.Fatalf("play(%s): not legal in position\n%s", text, state.Board)
		}
		var err error
		state, err = state.TryApply(move)
		if err != nil {
			t.Fatalf("play(%s): %v", text, err)
		}
	}
	return state
}

// pieceForGlyph is the inverse of GlyphFor.
func pieceForGlyph(r rune) (Piece, bool) {
	color := White
	if r >= 'a' && r <= 'z' {
		color = Black
		r -= 'a' - 'A'
	}
	var t PieceType
	switch r {
	case 'K':
		t = King
	case 'Q':
		t = Queen
	case 'R':
		t = Rook
	case 'B':
		t = Bishop
	case 'N':
		t = Knight
	case 'P':
		t = Pawn
	default:
		return Piece{}, false
	}
	return Piece{Type: t, Color: color}, true
}
