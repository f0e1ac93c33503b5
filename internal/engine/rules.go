package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// RepetitionLimit is how many times a position must occur to draw the game.
const RepetitionLimit = 3

// HasInsufficientMaterial reports whether neither side can possibly
// checkmate: bare kings, a single minor piece against a bare king, or any
// number of bishops that all stand on squares of one colour.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var knights, bishops int
	var lightBishop, darkBishop bool

	for i, piece := range pos.Board {
		if piece == chess.Empty {
			continue
		}
		switch chess.ExtractPiece(piece) {
		case chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			if chess.Square(i).IsLight() {
				lightBishop = true
			} else {
				darkBishop = true
			}
		default:
			// Pawns, rooks or queens can always force mate in principle.
			return false
		}
	}

	switch {
	case knights == 0 && bishops == 0:
		return true // K vs K
	case knights == 1 && bishops == 0:
		return true // K+N vs K
	case knights == 0:
		// Bishops all on one square colour cannot mate.
		return !(lightBishop && darkBishop)
	}
	return false
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the limit.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// RepetitionCount returns how many times the current position has occurred
// since the last irreversible move, the current occurrence included.
func RepetitionCount(pos *chess.Position) int {
	if pos.HalfmoveClock == 0 || len(pos.History) == 0 {
		return 1
	}
	return hashing.CountRepetitions(pos.History, hashing.Signature(pos), int(pos.HalfmoveClock)) + 1
}

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times.
func IsThreefoldRepetition(pos *chess.Position) bool {
	return RepetitionCount(pos) >= RepetitionLimit
}
