package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Apply plays move in pos and returns the resulting position. pos is not
// modified.
//
// The move is matched against the legal moves of the position on its From,
// To and Promotion fields; the en passant and castling flags are filled in
// from the matching legal move. Apply fails with ErrInvalidState when the
// game is already over, ErrPromotionRequired when a pawn reaches the last
// rank without a promotion piece, and ErrIllegalMove otherwise.
func Apply(pos *chess.Position, move chess.Move) (chess.Position, error) {
	if status := GameStatus(pos); status.IsTerminal() {
		return chess.Position{}, &errors.MoveError{
			Err:  errors.Wrapf(errors.ErrInvalidState, "game is over (%s)", status),
			FEN:  FEN(pos),
			Move: move.UCI(),
		}
	}

	legal, err := resolveMove(pos, move)
	if err != nil {
		return chess.Position{}, &errors.MoveError{Err: err, FEN: FEN(pos), Move: move.UCI()}
	}
	return applyLegal(pos, legal), nil
}

// NeedsPromotion reports whether moving the piece on from to to would bring
// a pawn of the side to move onto its last rank.
func NeedsPromotion(pos *chess.Position, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return pos.Board.At(from) == chess.MakeColouredPiece(pos.ToMove, chess.Pawn) &&
		to.Rank() == chess.PromotionRank(pos.ToMove)
}

// resolveMove finds the legal move matching the caller's move.
func resolveMove(pos *chess.Position, move chess.Move) (chess.Move, error) {
	if !move.From.Valid() || !move.To.Valid() {
		return chess.Move{}, errors.ErrIllegalMove
	}
	if move.Promotion != chess.Empty && !chess.IsPromotionPiece(move.Promotion) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "cannot promote to %s", move.Promotion)
	}

	promotable := false
	for _, m := range LegalMovesFrom(pos, move.From) {
		if m.To != move.To {
			continue
		}
		if m.Promotion != move.Promotion {
			promotable = promotable || m.IsPromotion()
			continue
		}
		if (move.EnPassant && !m.EnPassant) || (move.Castle != chess.NoCastle && move.Castle != m.Castle) {
			return chess.Move{}, errors.ErrIllegalMove
		}
		return m, nil
	}
	if promotable && move.Promotion == chess.Empty {
		return chess.Move{}, errors.ErrPromotionRequired
	}
	return chess.Move{}, errors.ErrIllegalMove
}

// applyLegal plays an already validated move and maintains the repetition
// history. The history is dropped whenever the halfmove clock resets, since
// no earlier position can recur after a pawn move or capture.
func applyLegal(pos *chess.Position, m chess.Move) chess.Position {
	next := makeMove(pos, m)
	if next.HalfmoveClock > 0 {
		n := len(pos.History)
		next.History = append(pos.History[:n:n], hashing.Signature(pos))
	}
	return next
}

// makeMove updates a copy of pos for m without any legality check. The
// returned position carries no history.
func makeMove(pos *chess.Position, m chess.Move) chess.Position {
	next := *pos
	next.History = nil

	colour := pos.ToMove
	piece := next.Board.At(m.From)
	captured := next.Board.At(m.To)

	next.Board.Put(m.From, chess.Empty)
	switch {
	case m.EnPassant:
		if victim := enPassantVictim(pos, m.To, colour); victim != chess.NoSquare {
			captured = next.Board.At(victim)
			next.Board.Put(victim, chess.Empty)
		}
	case m.Castle != chess.NoCastle:
		rookFrom, rookTo := castlingRookSquares(colour, m.Castle)
		next.Board.Put(rookTo, next.Board.At(rookFrom))
		next.Board.Put(rookFrom, chess.Empty)
	}
	if m.Promotion != chess.Empty {
		piece = chess.MakeColouredPiece(colour, m.Promotion)
	}
	next.Board.Put(m.To, piece)

	next.Castling = updateCastlingRights(pos.Castling, m.From, m.To)

	// En passant target is set after every double push, capturable or not.
	next.EnPassant = chess.NoSquare
	isPawn := chess.ExtractPiece(piece) == chess.Pawn || m.Promotion != chess.Empty
	if isPawn && abs(int(m.To.Rank())-int(m.From.Rank())) == 2 {
		next.EnPassant, _ = m.From.Offset(0, chess.ColourOffset(colour))
	}

	if isPawn || captured != chess.Empty {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.FullmoveNumber++
	}
	next.ToMove = colour.Opposite()
	return next
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
