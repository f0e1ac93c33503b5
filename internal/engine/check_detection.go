package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked under the
// current occupancy.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	board := &pos.Board

	// Check pawn attacks: an attacking pawn sits one rank behind the square
	// from the attacker's point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if from, ok := sq.Offset(dc, pawnDir); ok && board.At(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, offset := range knightOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.At(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, offset := range kingOffsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.At(from) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if rayAttacked(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// rayAttacked walks each direction from sq and reports whether the first
// piece met is one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.At(from)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
