package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move for the side to move. A move is legal
// when it follows its piece's movement pattern and does not leave the
// mover's own king attacked. Promotions appear once per promotion piece.
func LegalMoves(pos *chess.Position) []chess.Move {
	return filterLegal(pos, pseudoLegalMoves(pos, make([]chess.Move, 0, 48)))
}

// LegalMovesFrom returns the legal moves of the piece on from. It returns an
// empty slice for an empty square or a piece of the side not to move.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	if !from.Valid() {
		return nil
	}
	return filterLegal(pos, pseudoLegalMovesFrom(pos, from, nil))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// It stops at the first one found.
func HasLegalMoves(pos *chess.Position) bool {
	var buf [32]chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		for _, m := range pseudoLegalMovesFrom(pos, sq, buf[:0]) {
			if leavesKingSafe(pos, m) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover in check,
// reusing the backing array of moves.
func filterLegal(pos *chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe plays m on a copy of the position and checks that the
// mover's king is not attacked afterwards.
func leavesKingSafe(pos *chess.Position, m chess.Move) bool {
	next := makeMove(pos, m)
	return !IsInCheck(&next, pos.ToMove)
}
