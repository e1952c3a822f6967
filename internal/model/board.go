package model

import "strings"

// Board is indexed [rank][file]. Copying a Board copies every square; the pieces
// themselves are shared because they are never mutated.
type Board [8][8]*Piece

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting array.
func NewBoard() Board {
	var board Board
	for file, t := range backRank {
		board[0][file] = &Piece{Type: t, Color: Black}
		board[1][file] = &Piece{Type: Pawn, Color: Black}
		board[6][file] = &Piece{Type: Pawn, Color: White}
		board[7][file] = &Piece{Type: t, Color: White}
	}
	return board
}

// At returns the piece on s, or nil for an empty square.
func (b *Board) At(s Square) *Piece {
	return b[s.Rank][s.File]
}

// Put places p on s; a nil p empties the square.
func (b *Board) Put(s Square, p *Piece) {
	b[s.Rank][s.File] = p
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return b
}

// KingSquare returns the square of color's king.
func (b *Board) KingSquare(color Color) (Square, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := b[rank][file]; p != nil && p.Type == King && p.Color == color {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// String draws the board from white's side, one rank per line.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := b[rank][file]; p != nil {
				sb.WriteString(GlyphFor(*p))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
