package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Movement offsets as {file, rank} deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// generator appends the pseudo-legal moves of the piece on from.
type generator func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move

// generators is the movement pattern table, keyed on piece type.
var generators = [chess.NumPieceValues]generator{
	chess.Pawn: pawnMoves,
	chess.Knight: func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
		return stepMoves(pos, from, colour, knightOffsets, moves)
	},
	chess.Bishop: func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
		return slideMoves(pos, from, colour, diagonalDirs, moves)
	},
	chess.Rook: func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
		return slideMoves(pos, from, colour, straightDirs, moves)
	},
	chess.Queen: func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
		return slideMoves(pos, from, colour, queenDirs, moves)
	},
	chess.King: func(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
		moves = stepMoves(pos, from, colour, kingOffsets, moves)
		return castlingMoves(pos, from, colour, moves)
	},
}

// pseudoLegalMoves appends every pseudo-legal move of the side to move.
func pseudoLegalMoves(pos *chess.Position, moves []chess.Move) []chess.Move {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		moves = pseudoLegalMovesFrom(pos, sq, moves)
	}
	return moves
}

// pseudoLegalMovesFrom appends the pseudo-legal moves of the piece on from,
// if it belongs to the side to move.
func pseudoLegalMovesFrom(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	piece := pos.Board.At(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != pos.ToMove {
		return moves
	}
	gen := generators[chess.ExtractPiece(piece)]
	if gen == nil {
		return moves
	}
	return gen(pos, from, pos.ToMove, moves)
}

// isEnemy reports whether p is a piece of the opposite colour.
func isEnemy(p chess.Piece, colour chess.Colour) bool {
	return p != chess.Empty && chess.ExtractColour(p) != colour
}

// stepMoves generates single-step moves (knight, king).
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := pos.Board.At(to)
		if target == chess.Empty || isEnemy(target, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slideMoves generates moves for sliding pieces (bishop, rook, queen).
func slideMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := pos.Board.At(to)
			if target != chess.Empty {
				if isEnemy(target, colour) {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Forward move
	if one, ok := from.Offset(0, dir); ok && pos.Board.At(one) == chess.Empty {
		moves = appendPawnMove(moves, from, one, colour)
		// Double push from starting rank
		if from.Rank() == chess.PawnStartRank(colour) {
			if two, ok := one.Offset(0, dir); ok && pos.Board.At(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		target := pos.Board.At(to)
		if isEnemy(target, colour) {
			moves = appendPawnMove(moves, from, to, colour)
			continue
		}
		if target == chess.Empty && to == pos.EnPassant && enPassantVictim(pos, to, colour) != chess.NoSquare {
			moves = append(moves, chess.Move{From: from, To: to, EnPassant: true})
		}
	}
	return moves
}

// appendPawnMove appends a pawn move, expanded into the four promotion
// choices when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank() != chess.PromotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured by an en passant
// capture onto target by colour, or NoSquare if no such pawn stands there.
func enPassantVictim(pos *chess.Position, target chess.Square, colour chess.Colour) chess.Square {
	sq, ok := target.Offset(0, -chess.ColourOffset(colour))
	if !ok || pos.Board.At(sq) != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		return chess.NoSquare
	}
	return sq
}
