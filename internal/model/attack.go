package model

var (
	rookDirs   = []Square{{Rank: 1, File: 0}, {Rank: -1, File: 0}, {Rank: 0, File: 1}, {Rank: 0, File: -1}}
	bishopDirs = []Square{{Rank: 1, File: 1}, {Rank: 1, File: -1}, {Rank: -1, File: 1}, {Rank: -1, File: -1}}
	queenDirs  = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{{Rank: 2, File: 1}, {Rank: 2, File: -1}, {Rank: -2, File: 1}, {Rank: -2, File: -1}, {Rank: 1, File: 2}, {Rank: 1, File: -2}, {Rank: -1, File: 2}, {Rank: -1, File: -2}}
	kingDirs   = queenDirs
)

// forward is the rank step a pawn of color advances by.
func forward(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

// IsAttacked reports whether by could capture on target with one pseudo-legal
// move. Whether target is occupied does not matter.
func IsAttacked(board *Board, target Square, by Color) bool {
	if slidingAttack(board, target, by, rookDirs, Rook) || slidingAttack(board, target, by, bishopDirs, Bishop) {
		return true
	}
	if stepAttack(board, target, by, knightDirs, Knight) || stepAttack(board, target, by, kingDirs, King) {
		return true
	}
	// an attacking pawn sits one step behind target, relative to its own advance
	pawnRank := target.Rank - forward(by)
	for _, df := range []int{-1, 1} {
		sq := Square{Rank: pawnRank, File: target.File + df}
		if boundaryCheck(sq) && isPiece(board.At(sq), by, Pawn) {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked by the other side.
func InCheck(board *Board, color Color) bool {
	king, ok := board.KingSquare(color)
	if !ok {
		return false
	}
	return IsAttacked(board, king, color.Opponent())
}

func slidingAttack(board *Board, target Square, by Color, dirs []Square, kind PieceType) bool {
	for _, dir := range dirs {
		sq := target.offset(dir.Rank, dir.File)
		for boundaryCheck(sq) {
			if p := board.At(sq); p != nil {
				if p.Color == by && (p.Type == kind || p.Type == Queen) {
					return true
				}
				break
			}
			sq = sq.offset(dir.Rank, dir.File)
		}
	}
	return false
}

func stepAttack(board *Board, target Square, by Color, dirs []Square, kind PieceType) bool {
	for _, dir := range dirs {
		sq := target.offset(dir.Rank, dir.File)
		if boundaryCheck(sq) && isPiece(board.At(sq), by, kind) {
			return true
		}
	}
	return false
}

func isPiece(p *Piece, color Color, kind PieceType) bool {
	return p != nil && p.Color == color && p.Type == kind
}
