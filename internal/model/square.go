package model

import "fmt"

// Square is a board coordinate. Rank 0 is black's home rank, rank 7 is white's.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

func (s Square) String() string {
	return SquareToAlgebraic(s)
}

func (s Square) offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

func boundaryCheck(s Square) bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

// SquareToAlgebraic renders a square as file letter a-h plus rank digit 1-8.
func SquareToAlgebraic(s Square) string {
	return fmt.Sprintf("%c%d", 'a'+s.File, 8-s.Rank)
}

func (s Square) fileNotation() string {
	return string(rune('a' + s.File))
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	file := int(text[0]) - 'a'
	rank := 8 - (int(text[1]) - '0')
	sq := Square{Rank: rank, File: file}
	if !boundaryCheck(sq) {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
