package chess

// Board maps each square to the coloured piece standing on it, or Empty.
// It is a value type: assigning a Board copies it.
type Board [NumSquares]Piece

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	sq := NewSquare(col, rank)
	if sq == NoSquare {
		return Empty
	}
	return b[sq]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if sq := NewSquare(col, rank); sq != NoSquare {
		b[sq] = piece
	}
}

// At returns the piece on sq.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq]
}

// Put places a piece on sq.
func (b *Board) Put(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq] = piece
	}
}

// Find returns the first square holding the given coloured piece, or NoSquare.
func (b *Board) Find(piece Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many squares hold the given coloured piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b {
		if p == piece {
			n++
		}
	}
	return n
}

// CastlingRights is a set of the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the flag for the given colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White && side == Queenside:
		return WhiteQueenside
	case colour == Black && side == Kingside:
		return BlackKingside
	case colour == Black && side == Queenside:
		return BlackQueenside
	}
	return NoCastling
}

// Has reports whether all flags in r are set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != NoCastling && c&r == r
}

// Without returns c with the flags in r cleared.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// Position is the full game state needed to resume play and judge legality.
// Positions are values; engine operations return new positions and never
// modify their argument.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Remaining castling flags. Cleared permanently once the king or the
	// relevant rook moves or is captured.
	Castling CastlingRights

	// Square a pawn skipped over on the previous move, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// Incremented after each Black move.
	FullmoveNumber uint

	// Repetition signatures of earlier positions that could still recur,
	// oldest first.
	History []uint64
}

// NewPosition creates an empty position: no pieces, White to move.
func NewPosition() Position {
	return Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board = Board{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, piece := range backRank {
		col := Col(ColBase + i)
		p.Board.Set(col, '1', W(piece))
		p.Board.Set(col, '2', W(Pawn))
		p.Board.Set(col, '7', B(Pawn))
		p.Board.Set(col, '8', B(piece))
	}

	p.ToMove = White
	p.Castling = AllCastling
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	p.History = nil
}

// Clone returns a copy of the position that shares no memory with p.
func (p Position) Clone() Position {
	if p.History != nil {
		p.History = append(make([]uint64, 0, len(p.History)+1), p.History...)
	}
	return p
}

// KingSquare returns the square of the given colour's king, or NoSquare.
func (p *Position) KingSquare(colour Colour) Square {
	return p.Board.Find(MakeColouredPiece(colour, King))
}
