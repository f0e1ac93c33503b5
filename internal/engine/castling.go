package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingPath describes one castling move for one colour.
type castlingPath struct {
	kingTo   chess.Col
	rookFrom chess.Col
	rookTo   chess.Col
	between  []chess.Col // must be empty
	transit  []chess.Col // must not be attacked, destination included
}

var castlingPaths = map[chess.CastleSide]castlingPath{
	chess.Kingside: {
		kingTo:   'g',
		rookFrom: 'h',
		rookTo:   'f',
		between:  []chess.Col{'f', 'g'},
		transit:  []chess.Col{'f', 'g'},
	},
	chess.Queenside: {
		kingTo:   'c',
		rookFrom: 'a',
		rookTo:   'd',
		between:  []chess.Col{'b', 'c', 'd'},
		transit:  []chess.Col{'d', 'c'},
	},
}

// kingHomeCol is the file both kings start on.
const kingHomeCol chess.Col = 'e'

// castlingMoves appends the castling moves available to the king on from.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	rank := chess.HomeRank(colour)
	if from != chess.NewSquare(kingHomeCol, rank) {
		return moves
	}
	inCheck := false
	checked := false
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !pos.Castling.Has(chess.CastlingRight(colour, side)) {
			continue
		}
		path := castlingPaths[side]
		if pos.Board.Get(path.rookFrom, rank) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		if !squaresEmpty(pos, rank, path.between) {
			continue
		}
		// Cannot castle out of check
		if !checked {
			inCheck = IsInCheck(pos, colour)
			checked = true
		}
		if inCheck {
			return moves
		}
		if squaresAttacked(pos, rank, path.transit, colour.Opposite()) {
			continue
		}
		moves = append(moves, chess.Move{
			From:   from,
			To:     chess.NewSquare(path.kingTo, rank),
			Castle: side,
		})
	}
	return moves
}

func squaresEmpty(pos *chess.Position, rank chess.Rank, cols []chess.Col) bool {
	for _, col := range cols {
		if pos.Board.Get(col, rank) != chess.Empty {
			return false
		}
	}
	return true
}

func squaresAttacked(pos *chess.Position, rank chess.Rank, cols []chess.Col, by chess.Colour) bool {
	for _, col := range cols {
		if IsSquareAttacked(pos, chess.NewSquare(col, rank), by) {
			return true
		}
	}
	return false
}

// castlingRookSquares returns where the rook starts and ends for a castle.
func castlingRookSquares(colour chess.Colour, side chess.CastleSide) (from, to chess.Square) {
	rank := chess.HomeRank(colour)
	path := castlingPaths[side]
	return chess.NewSquare(path.rookFrom, rank), chess.NewSquare(path.rookTo, rank)
}

// castlingRightsLost maps the squares whose vacating or capture removes a
// castling right.
var castlingRightsLost = map[chess.Square]chess.CastlingRights{
	chess.NewSquare('e', '1'): chess.WhiteKingside | chess.WhiteQueenside,
	chess.NewSquare('h', '1'): chess.WhiteKingside,
	chess.NewSquare('a', '1'): chess.WhiteQueenside,
	chess.NewSquare('e', '8'): chess.BlackKingside | chess.BlackQueenside,
	chess.NewSquare('h', '8'): chess.BlackKingside,
	chess.NewSquare('a', '8'): chess.BlackQueenside,
}

// updateCastlingRights removes castling rights when a king or rook leaves its
// home square or a rook is captured on it. Rights are never restored.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Square) chess.CastlingRights {
	return rights.Without(castlingRightsLost[from] | castlingRightsLost[to])
}
