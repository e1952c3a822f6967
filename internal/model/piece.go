package model

import "strings"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// title returns "White" or "Black" for status lines.
func (c Color) title() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PromotionTypes lists the kinds a pawn may promote to, in the order legal moves
// are generated.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// notation returns the piece letter used in move notation; pawns have none.
func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is never mutated once placed on a board; transitions replace it.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// GlyphFor returns the single-character glyph of a piece: uppercase for white,
// lowercase for black.
func GlyphFor(p Piece) string {
	glyph := p.Type.notation()
	if p.Type == Pawn {
		glyph = "P"
	}
	if p.Color == Black {
		return strings.ToLower(glyph)
	}
	return glyph
}
