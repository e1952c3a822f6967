package model

// PseudoMoves returns the moves of the piece on from that follow its movement
// pattern, without checking whether they leave the mover's king attacked. Pawn
// moves onto the last rank carry no promotion kind here.
func PseudoMoves(state *GameState, from Square) []Move {
	piece := state.Board.At(from)
	if piece == nil {
		return nil
	}
	switch piece.Type {
	case Pawn:
		return pseudoPawnMoves(state, from, piece.Color)
	case Knight:
		return pseudoStepMoves(&state.Board, from, piece.Color, knightDirs)
	case Bishop:
		return pseudoSlidingMoves(&state.Board, from, piece.Color, bishopDirs)
	case Rook:
		return pseudoSlidingMoves(&state.Board, from, piece.Color, rookDirs)
	case Queen:
		return pseudoSlidingMoves(&state.Board, from, piece.Color, queenDirs)
	case King:
		moves := pseudoStepMoves(&state.Board, from, piece.Color, kingDirs)
		return append(moves, castleMoves(state, from, piece.Color)...)
	}
	return nil
}

func pawnStartRank(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

func lastRank(color Color) int {
	if color == White {
		return 0
	}
	return 7
}

func homeRank(color Color) int {
	if color == White {
		return 7
	}
	return 0
}

func pseudoPawnMoves(state *GameState, from Square, color Color) []Move {
	var moves []Move
	board := &state.Board
	dir := forward(color)

	one := from.offset(dir, 0)
	if boundaryCheck(one) && board.At(one) == nil {
		moves = append(moves, Move{From: from, To: one})
		two := from.offset(2*dir, 0)
		if from.Rank == pawnStartRank(color) && board.At(two) == nil {
			moves = append(moves, Move{From: from, To: two})
		}
	}
	for _, df := range []int{-1, 1} {
		target := from.offset(dir, df)
		if !boundaryCheck(target) {
			continue
		}
		if p := board.At(target); p != nil {
			if p.Color != color {
				moves = append(moves, Move{From: from, To: target})
			}
		} else if state.EnPassantTarget != nil && *state.EnPassantTarget == target {
			moves = append(moves, Move{From: from, To: target, IsEnPassant: true})
		}
	}
	return moves
}

func pseudoStepMoves(board *Board, from Square, color Color, dirs []Square) []Move {
	var moves []Move
	for _, dir := range dirs {
		target := from.offset(dir.Rank, dir.File)
		if !boundaryCheck(target) {
			continue
		}
		if p := board.At(target); p == nil || p.Color != color {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}

func pseudoSlidingMoves(board *Board, from Square, color Color, dirs []Square) []Move {
	var moves []Move
	for _, dir := range dirs {
		target := from.offset(dir.Rank, dir.File)
		for boundaryCheck(target) {
			p := board.At(target)
			if p == nil {
				moves = append(moves, Move{From: from, To: target})
			} else {
				if p.Color != color {
					moves = append(moves, Move{From: from, To: target})
				}
				break
			}
			target = target.offset(dir.Rank, dir.File)
		}
	}
	return moves
}

// castleMoves offers castling when the right is still held, the squares between
// king and rook are empty, and the king's start, transit and landing squares are
// not attacked. Destinations are always file 6 (king side) and file 2 (queen side).
func castleMoves(state *GameState, from Square, color Color) []Move {
	home := homeRank(color)
	if from != (Square{Rank: home, File: 4}) {
		return nil
	}
	board := &state.Board
	opponent := color.Opponent()
	kingSide, queenSide := state.Castling.For(color)

	var moves []Move
	if kingSide && isPiece(board[home][7], color, Rook) &&
		board[home][5] == nil && board[home][6] == nil &&
		!anyAttacked(board, home, opponent, 4, 5, 6) {
		moves = append(moves, Move{From: from, To: Square{Rank: home, File: 6}, IsCastle: true})
	}
	if queenSide && isPiece(board[home][0], color, Rook) &&
		board[home][1] == nil && board[home][2] == nil && board[home][3] == nil &&
		!anyAttacked(board, home, opponent, 4, 3, 2) {
		moves = append(moves, Move{From: from, To: Square{Rank: home, File: 2}, IsCastle: true})
	}
	return moves
}

func anyAttacked(board *Board, rank int, by Color, files ...int) bool {
	for _, file := range files {
		if IsAttacked(board, Square{Rank: rank, File: file}, by) {
			return true
		}
	}
	return false
}
