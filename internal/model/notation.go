package model

import "fmt"

// notation renders move in simplified algebraic form from the position before it
// is played. Two like pieces reaching the same square are not disambiguated.
func (s *GameState) notation(move Move, isCapture bool) string {
	if move.IsCastle {
		if move.To.File == 2 {
			return "O-O-O"
		}
		return "O-O"
	}
	piece := s.Board.At(move.From)
	prefix := piece.Type.notation()
	if piece.Type == Pawn && isCapture {
		prefix = move.From.fileNotation()
	}
	capture := ""
	if isCapture {
		capture = "x"
	}
	promotion := ""
	if piece.Type == Pawn && move.To.Rank == lastRank(piece.Color) {
		kind := move.Promotion
		if kind == "" {
			kind = Queen
		}
		promotion = "=" + kind.notation()
	}
	return fmt.Sprintf("%s%s%s%s", prefix, capture, SquareToAlgebraic(move.To), promotion)
}
