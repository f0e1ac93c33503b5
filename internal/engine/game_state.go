package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus classifies the position. Checkmate and stalemate take
// precedence over the draw rules; among the draws, insufficient material is
// checked first, then the fifty-move rule, then threefold repetition.
func GameStatus(pos *chess.Position) chess.Status {
	if !HasLegalMoves(pos) {
		if IsInCheck(pos, pos.ToMove) {
			return chess.Status{Kind: chess.Checkmate, Winner: pos.ToMove.Opposite()}
		}
		return chess.Status{Kind: chess.Stalemate}
	}

	switch {
	case HasInsufficientMaterial(pos):
		return chess.Status{Kind: chess.DrawInsufficientMaterial}
	case IsFiftyMoveDraw(pos):
		return chess.Status{Kind: chess.DrawFiftyMove}
	case IsThreefoldRepetition(pos):
		return chess.Status{Kind: chess.DrawThreefoldRepetition}
	}
	return chess.Status{Kind: chess.InProgress}
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the side to move has no legal moves but is
// not in check.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}
