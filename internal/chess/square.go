package chess

// Square identifies one of the 64 board squares, a1 = 0 through h8 = 63.
type Square int8

// NoSquare marks an absent square (for example, no en passant target).
const NoSquare Square = -1

// NewSquare builds a square from character coordinates ('a'-'h', '1'-'8').
// It returns NoSquare for coordinates off the board.
func NewSquare(col Col, rank Rank) Square {
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare
	}
	return Square(int(rank-RankBase)*BoardSize + int(col-ColBase))
}

// ParseSquare parses algebraic square names such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := NewSquare(Col(s[0]), Rank(s[1]))
	return sq, sq != NoSquare
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Col returns the file of the square.
func (s Square) Col() Col {
	return Col(int(s)%BoardSize + ColBase)
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(int(s)/BoardSize + RankBase)
}

// Offset returns the square dc files and dr ranks away, and false if that
// square is off the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	col := int(s)%BoardSize + dc
	rank := int(s)/BoardSize + dr
	if col < 0 || col >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return Square(rank*BoardSize + col), true
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (int(s)%BoardSize+int(s)/BoardSize)%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col()), byte(s.Rank())})
}
