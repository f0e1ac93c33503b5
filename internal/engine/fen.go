// Package engine implements the rules of chess: move generation, legality,
// move application, game status, FEN, UCI and SAN notation, and perft.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	pos := chess.NewPosition()
	pos.SetupInitialPosition()
	return pos
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN parses a FEN string into a position. The four-field form without
// clocks is accepted with the clocks defaulting to 0 and 1. Anything else
// that is not a well-formed, consistent position is rejected with an
// error wrapping ErrMalformedNotation; nothing is repaired.
func ParseFEN(fen string) (chess.Position, error) {
	pos := chess.NewPosition()
	parts := strings.Fields(fen)
	if len(parts) != 6 && len(parts) != 4 {
		return chess.Position{}, fenError(fen, "fields", "6 space-separated fields", strconv.Itoa(len(parts)))
	}

	if err := parsePiecePositions(&pos, fen, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, fen, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, fen, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, fen, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if len(parts) == 6 {
		if err := parseClocks(&pos, fen, parts[4], parts[5]); err != nil {
			return chess.Position{}, err
		}
	}

	if IsInCheck(&pos, pos.ToMove.Opposite()) {
		return chess.Position{}, fenError(fen, "side to move", "", "side not to move is in check")
	}
	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is intended for
// fixed, known-good positions.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func fenError(fen, field, expected, got string) error {
	return &errors.NotationError{
		Err:      errors.ErrMalformedNotation,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "piece placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)
		lastWasDigit := false

		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				if lastWasDigit {
					return fenError(fen, "piece placement", "", "consecutive digits in rank "+string(rune(rank)))
				}
				col += chess.Col(c - '0')
				lastWasDigit = true
				if col > chess.LastCol+1 {
					return fenError(fen, "piece placement", "8 squares in rank "+string(rune(rank)), "more")
				}
				continue
			}
			lastWasDigit = false

			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return fenError(fen, "piece placement", "piece letter or digit", strconv.QuoteRune(rune(c)))
			}
			if col > chess.LastCol {
				return fenError(fen, "piece placement", "8 squares in rank "+string(rune(rank)), "more")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
				return fenError(fen, "piece placement", "", "pawn on rank "+string(rune(rank)))
			}
			pos.Board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
			col++
		}
		if col != chess.LastCol+1 {
			return fenError(fen, "piece placement", "8 squares in rank "+string(rune(rank)), strconv.Itoa(int(col-chess.FirstCol)))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := pos.Board.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return fenError(fen, "piece placement", "one "+colour.String()+" king", strconv.Itoa(n))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", field)
	}
	return nil
}

var castlingLetters = []struct {
	letter byte
	right  chess.CastlingRights
	colour chess.Colour
	side   chess.CastleSide
}{
	{'K', chess.WhiteKingside, chess.White, chess.Kingside},
	{'Q', chess.WhiteQueenside, chess.White, chess.Queenside},
	{'k', chess.BlackKingside, chess.Black, chess.Kingside},
	{'q', chess.BlackQueenside, chess.Black, chess.Queenside},
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order, and each right needs its king and rook on their
// home squares.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	next := 0
	for i := 0; i < len(field); i++ {
		found := false
		for next < len(castlingLetters) {
			entry := castlingLetters[next]
			next++
			if entry.letter == field[i] {
				found = true
				if !castlingPiecesInPlace(pos, entry.colour, entry.side) {
					return fenError(fen, "castling", "king and rook on home squares for "+string(entry.letter), "")
				}
				pos.Castling |= entry.right
				break
			}
		}
		if !found {
			return fenError(fen, "castling", "- or a subset of KQkq in order", field)
		}
	}
	return nil
}

func castlingPiecesInPlace(pos *chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	rank := chess.HomeRank(colour)
	rookFrom, _ := castlingRookSquares(colour, side)
	return pos.Board.Get(kingHomeCol, rank) == chess.MakeColouredPiece(colour, chess.King) &&
		pos.Board.At(rookFrom) == chess.MakeColouredPiece(colour, chess.Rook)
}

// parseEnPassant parses the en passant target field. The target must be the
// square a pawn of the side not to move has just skipped over.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(fen, "en passant", "- or a square", field)
	}

	mover := pos.ToMove.Opposite()
	dir := chess.ColourOffset(mover)
	// The target lies one rank in front of the mover's pawn start rank.
	if sq.Rank() != chess.Rank(int(chess.PawnStartRank(mover))+dir) {
		return fenError(fen, "en passant", "target on rank 3 or 6 behind the side not to move", field)
	}
	pushed, _ := sq.Offset(0, dir)
	origin, _ := sq.Offset(0, -dir)
	if pos.Board.At(sq) != chess.Empty || pos.Board.At(origin) != chess.Empty ||
		pos.Board.At(pushed) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return fenError(fen, "en passant", "a pawn that has just moved two squares past "+field, "")
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen, halfmove, fullmove string) error {
	half, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fenError(fen, "halfmove clock", "non-negative integer", halfmove)
	}
	full, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || full < 1 {
		return fenError(fen, "fullmove number", "positive integer", fullmove)
	}
	pos.HalfmoveClock = uint(half)
	pos.FullmoveNumber = uint(full)
	return nil
}

// FEN serializes a position to its six-field FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')

	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')

	sb.WriteString(pos.EnPassant.String())

	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement portion of a FEN string.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := pos.Board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability portion of a FEN string.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	if pos.Castling == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, entry := range castlingLetters {
		if pos.Castling.Has(entry.right) {
			sb.WriteByte(entry.letter)
		}
	}
}
