package model

// LegalMoves returns the legal moves of the piece on from. Squares that are empty
// or hold a piece of the side not to move yield none. Pawn moves onto the last
// rank are expanded into one move per promotion kind.
func (s *GameState) LegalMoves(from Square) []Move {
	if !boundaryCheck(from) {
		return nil
	}
	piece := s.Board.At(from)
	if piece == nil || piece.Color != s.ToMove {
		return nil
	}
	var candidates []Move
	for _, move := range PseudoMoves(s, from) {
		if piece.Type == Pawn && move.To.Rank == lastRank(piece.Color) {
			for _, kind := range PromotionTypes {
				promotion := move
				promotion.Promotion = kind
				candidates = append(candidates, promotion)
			}
			continue
		}
		candidates = append(candidates, move)
	}
	return s.filterLegalMoves(piece.Color, candidates)
}

// filterLegalMoves keeps the moves after which color's king is not attacked.
func (s *GameState) filterLegalMoves(color Color, candidates []Move) []Move {
	legalMoves := make([]Move, 0, len(candidates))
	for _, move := range candidates {
		board, _, _ := s.boardAfter(move)
		if !InCheck(&board, color) {
			legalMoves = append(legalMoves, move)
		}
	}
	return legalMoves
}

// AllLegalMoves returns the legal moves of every piece of the side to move.
func (s *GameState) AllLegalMoves() []Move {
	moves := make([]Move, 0)
	s.eachOwnSquare(func(from Square) bool {
		moves = append(moves, s.LegalMoves(from)...)
		return true
	})
	return moves
}

func (s *GameState) hasAnyLegalMove() bool {
	found := false
	s.eachOwnSquare(func(from Square) bool {
		found = len(s.LegalMoves(from)) > 0
		return !found
	})
	return found
}

// eachOwnSquare calls fn for every square holding a piece of the side to move
// until fn returns false.
func (s *GameState) eachOwnSquare(fn func(Square) bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := s.Board[rank][file]; p != nil && p.Color == s.ToMove {
				if !fn(Square{Rank: rank, File: file}) {
					return
				}
			}
		}
	}
}

// FindLegalMove resolves a from/to request into the legal move carrying the right
// flags. An empty promotion stands for a queen.
func (s *GameState) FindLegalMove(from, to Square, promotion PieceType) (Move, bool) {
	if promotion == "" {
		promotion = Queen
	}
	for _, move := range s.LegalMoves(from) {
		if move.To != to {
			continue
		}
		if move.Promotion == "" || move.Promotion == promotion {
			return move, true
		}
	}
	return Move{}, false
}
