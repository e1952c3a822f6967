package model

// CastlingRights only ever lose flags over a game.
type CastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// AllCastlingRights is the starting set of rights.
var AllCastlingRights = CastlingRights{WhiteKingSide: true, WhiteQueenSide: true, BlackKingSide: true, BlackQueenSide: true}

// For returns color's king-side and queen-side rights.
func (c CastlingRights) For(color Color) (kingSide, queenSide bool) {
	if color == White {
		return c.WhiteKingSide, c.WhiteQueenSide
	}
	return c.BlackKingSide, c.BlackQueenSide
}

func (c *CastlingRights) clearColor(color Color) {
	if color == White {
		c.WhiteKingSide, c.WhiteQueenSide = false, false
	} else {
		c.BlackKingSide, c.BlackQueenSide = false, false
	}
}

// clearCorner drops the right tied to the rook corner s, if s is one.
func (c *CastlingRights) clearCorner(s Square) {
	switch s {
	case Square{Rank: 7, File: 7}:
		c.WhiteKingSide = false
	case Square{Rank: 7, File: 0}:
		c.WhiteQueenSide = false
	case Square{Rank: 0, File: 7}:
		c.BlackKingSide = false
	case Square{Rank: 0, File: 0}:
		c.BlackQueenSide = false
	}
}

type Result string

const (
	WhiteWins Result = "1-0"
	BlackWins Result = "0-1"
	Draw      Result = "1/2-1/2"
)

// Condition classifies a position for the side to move.
type Condition string

const (
	Ongoing   Condition = "ongoing"
	Check     Condition = "check"
	Checkmate Condition = "checkmate"
	Stalemate Condition = "stalemate"
)

const StatusIllegalMove = "Illegal move."

// GameState is one immutable position snapshot. Every transition returns a new
// GameState; nothing in this package modifies a snapshot after returning it.
type GameState struct {
	Board           Board          `json:"board"`
	ToMove          Color          `json:"toMove"`
	Castling        CastlingRights `json:"castling"`
	EnPassantTarget *Square        `json:"enPassantTarget"`
	HalfmoveClock   int            `json:"halfmoveClock"`
	FullmoveNumber  int            `json:"fullmoveNumber"`
	History         []Ply          `json:"history"`
	IsCheck         bool           `json:"isCheck"`
	Condition       Condition      `json:"condition"`
	Result          *Result        `json:"result"`
	Status          string         `json:"status"`
}

// NewGame returns the standard starting position with white to move.
func NewGame() GameState {
	return NewGameFromBoard(NewBoard(), White, AllCastlingRights, nil)
}

// NewGameFromBoard builds a position from an arbitrary arrangement and derives
// its status. The caller is responsible for placing exactly one king per side.
func NewGameFromBoard(board Board, toMove Color, castling CastlingRights, enPassant *Square) GameState {
	state := GameState{
		Board:          board,
		ToMove:         toMove,
		Castling:       castling,
		FullmoveNumber: 1,
		History:        make([]Ply, 0),
	}
	if enPassant != nil {
		ep := *enPassant
		state.EnPassantTarget = &ep
	}
	state.deriveStatus()
	return state
}

// Apply plays move and returns the resulting position. An illegal move yields a
// copy of s whose only difference is Status == StatusIllegalMove.
func (s GameState) Apply(move Move) GameState {
	legal, ok := s.legalMatch(move)
	if !ok {
		s.Status = StatusIllegalMove
		return s
	}
	next := s.advance(legal)
	next.deriveStatus()
	last := &next.History[len(next.History)-1]
	switch next.Condition {
	case Checkmate:
		last.Notation += "#"
	case Check:
		last.Notation += "+"
	}
	return next
}

// TryApply is Apply that also reports ErrIllegalMove.
func (s GameState) TryApply(move Move) (GameState, error) {
	next := s.Apply(move)
	if next.Status == StatusIllegalMove {
		return next, illegalMoveError(move)
	}
	return next, nil
}

func (s *GameState) legalMatch(move Move) (Move, bool) {
	if !boundaryCheck(move.From) || !boundaryCheck(move.To) {
		return Move{}, false
	}
	for _, legal := range s.LegalMoves(move.From) {
		if legal.matches(move) {
			return legal, true
		}
	}
	return Move{}, false
}

// advance builds the next position for a move already known to be legal, leaving
// status fields for deriveStatus.
func (s *GameState) advance(move Move) GameState {
	piece := *s.Board.At(move.From)
	board, captured, rookMove := s.boardAfter(move)

	next := GameState{
		Board:          board,
		ToMove:         s.ToMove.Opponent(),
		Castling:       s.Castling,
		HalfmoveClock:  s.HalfmoveClock + 1,
		FullmoveNumber: s.FullmoveNumber,
	}
	if piece.Type == King {
		next.Castling.clearColor(piece.Color)
	}
	next.Castling.clearCorner(move.From)
	next.Castling.clearCorner(move.To)

	if piece.Type == Pawn && abs(move.To.Rank-move.From.Rank) == 2 {
		next.EnPassantTarget = &Square{Rank: (move.From.Rank + move.To.Rank) / 2, File: move.From.File}
	}
	if piece.Type == Pawn || captured != nil {
		next.HalfmoveClock = 0
	}
	if piece.Color == Black {
		next.FullmoveNumber++
	}

	next.History = make([]Ply, len(s.History), len(s.History)+1)
	copy(next.History, s.History)
	next.History = append(next.History, Ply{
		Number:         s.FullmoveNumber,
		Move:           move,
		Piece:          piece,
		CapturedPiece:  captured,
		CastleRookMove: rookMove,
		Notation:       s.notation(move, captured != nil),
	})
	return next
}

// boardAfter returns the board that results from move together with the captured
// piece, which for en passant is the pawn beside the mover rather than on the
// destination square.
func (s *GameState) boardAfter(move Move) (Board, *Piece, *CastleRookMove) {
	board := s.Board.Clone()
	piece := board.At(move.From)
	captured := board.At(move.To)
	board.Put(move.From, nil)

	if move.IsEnPassant {
		victim := Square{Rank: move.From.Rank, File: move.To.File}
		captured = board.At(victim)
		board.Put(victim, nil)
	}

	var rookMove *CastleRookMove
	if move.IsCastle {
		rank := move.From.Rank
		rookMove = &CastleRookMove{From: Square{Rank: rank, File: 7}, To: Square{Rank: rank, File: 5}}
		if move.To.File == 2 {
			rookMove = &CastleRookMove{From: Square{Rank: rank, File: 0}, To: Square{Rank: rank, File: 3}}
		}
		board.Put(rookMove.To, board.At(rookMove.From))
		board.Put(rookMove.From, nil)
	}

	placed := piece
	if piece.Type == Pawn && move.To.Rank == lastRank(piece.Color) {
		kind := move.Promotion
		if kind == "" {
			kind = Queen
		}
		placed = &Piece{Type: kind, Color: piece.Color}
	}
	board.Put(move.To, placed)
	return board, captured, rookMove
}

// deriveStatus recomputes check, condition, result and status for the side to
// move. It is the only place those fields are set after a transition.
func (s *GameState) deriveStatus() {
	inCheck := InCheck(&s.Board, s.ToMove)
	hasAnyLegal := s.hasAnyLegalMove()

	s.IsCheck = inCheck
	s.Result = nil
	switch {
	case !hasAnyLegal && inCheck:
		result := WhiteWins
		if s.ToMove == White {
			result = BlackWins
		}
		s.Condition = Checkmate
		s.Result = &result
		s.Status = "Checkmate. " + s.ToMove.Opponent().title() + " wins."
	case !hasAnyLegal:
		result := Draw
		s.Condition = Stalemate
		s.Result = &result
		s.Status = "Stalemate. Draw."
	case inCheck:
		s.Condition = Check
		s.Status = s.ToMove.title() + " to move. Check!"
	default:
		s.Condition = Ongoing
		s.Status = s.ToMove.title() + " to move."
	}
}

// IsTerminal reports whether the game has ended by checkmate or stalemate.
func (s GameState) IsTerminal() bool {
	return s.Result != nil
}

// LastMove returns the most recent ply, if any.
func (s GameState) LastMove() *Ply {
	if len(s.History) == 0 {
		return nil
	}
	last := s.History[len(s.History)-1]
	return &last
}

// MovePairs groups the history into numbered white/black lines.
func (s GameState) MovePairs() []MovePair {
	pairs := make([]MovePair, 0, (len(s.History)+1)/2)
	for i := range s.History {
		ply := s.History[i]
		if ply.Piece.Color == Black && len(pairs) > 0 {
			last := &pairs[len(pairs)-1]
			if last.Number == ply.Number && last.BlackPly == nil {
				last.BlackPly = &ply
				continue
			}
		}
		pair := MovePair{Number: ply.Number}
		if ply.Piece.Color == White {
			pair.WhitePly = &ply
		} else {
			pair.BlackPly = &ply
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// CapturedPieces lists the pieces each side has taken, in capture order.
func (s GameState) CapturedPieces() CapturedPieces {
	captured := CapturedPieces{White: make([]Piece, 0), Black: make([]Piece, 0)}
	for _, ply := range s.History {
		if ply.CapturedPiece == nil {
			continue
		}
		if ply.Piece.Color == White {
			captured.White = append(captured.White, *ply.CapturedPiece)
		} else {
			captured.Black = append(captured.Black, *ply.CapturedPiece)
		}
	}
	return captured
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
