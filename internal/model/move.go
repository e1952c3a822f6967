package model

import (
	"fmt"
	"strings"
)

// Move is comparable; the castle, en-passant and promotion fields are part of its
// identity, so two moves with the same squares but different flags differ.
type Move struct {
	From        Square    `json:"from"`
	To          Square    `json:"to"`
	Promotion   PieceType `json:"promotion,omitempty"`
	IsCastle    bool      `json:"isCastle,omitempty"`
	IsEnPassant bool      `json:"isEnPassant,omitempty"`
}

func (m Move) String() string {
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.Promotion != "" {
		s += strings.ToLower(m.Promotion.notation())
	}
	return s
}

// matches reports whether requested names this generated move. A request without
// a promotion kind stands for a queen promotion.
func (m Move) matches(requested Move) bool {
	promotion := requested.Promotion
	if promotion == "" && m.Promotion != "" {
		promotion = Queen
	}
	return m.From == requested.From &&
		m.To == requested.To &&
		m.IsCastle == requested.IsCastle &&
		m.IsEnPassant == requested.IsEnPassant &&
		m.Promotion == promotion
}

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply is one applied move as recorded in the game history.
type Ply struct {
	Number         int             `json:"number"`
	Move           Move            `json:"move"`
	Piece          Piece           `json:"piece"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Notation       string          `json:"notation"`
}

// MovePair is one numbered line of the move list.
type MovePair struct {
	Number   int  `json:"number"`
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}
