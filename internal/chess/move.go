package chess

// CastleSide distinguishes the two castling moves.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the PGN notation for the castling side.
func (c CastleSide) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Move is a single move. It is only meaningful relative to the position it
// was generated from. Moves are comparable with ==.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// Set for en passant captures; the captured pawn is not on To.
	EnPassant bool

	// Set for castling; From and To are the king's squares.
	Castle CastleSide
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// UCI returns the move in long algebraic notation as used by UCI engines,
// e.g. "e2e4", "e7e8q", "e1g1".
func (m Move) UCI() string {
	if !m.From.Valid() || !m.To.Valid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}
