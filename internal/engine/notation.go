package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// uciPromotions maps UCI promotion suffixes to piece types.
var uciPromotions = map[byte]chess.Piece{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// ParseUCIMove parses long algebraic UCI text ("e2e4", "e7e8q") into a move
// without checking it against any position.
func ParseUCIMove(s string) (chess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, uciError(s, "4 or 5 characters", "")
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return chess.Move{}, uciError(s, "origin square", s[0:2])
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return chess.Move{}, uciError(s, "destination square", s[2:4])
	}
	move := chess.Move{From: from, To: to}
	if len(s) == 5 {
		promo, ok := uciPromotions[s[4]]
		if !ok {
			return chess.Move{}, uciError(s, "promotion piece q, r, b or n", s[4:])
		}
		move.Promotion = promo
	}
	return move, nil
}

// ParseUCI parses UCI text and resolves it to a legal move in pos.
func ParseUCI(pos *chess.Position, s string) (chess.Move, error) {
	move, err := ParseUCIMove(s)
	if err != nil {
		return chess.Move{}, err
	}
	legal, err := resolveMove(pos, move)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, FEN: FEN(pos), Move: s}
	}
	return legal, nil
}

func uciError(s, expected, got string) error {
	return &errors.NotationError{
		Err:      errors.ErrMalformedNotation,
		Input:    s,
		Field:    "uci",
		Expected: expected,
		Got:      got,
	}
}

// SAN renders a legal move in Standard Algebraic Notation, with check and
// mate suffixes.
func SAN(pos *chess.Position, move chess.Move) string {
	return sanWithLegal(pos, LegalMoves(pos), move)
}

// sanWithLegal renders move given the already generated legal moves.
func sanWithLegal(pos *chess.Position, legal []chess.Move, move chess.Move) string {
	san := sanBody(pos, legal, move)

	next := makeMove(pos, move)
	if IsInCheck(&next, next.ToMove) {
		if HasLegalMoves(&next) {
			san += "+"
		} else {
			san += "#"
		}
	}
	return san
}

// sanBody renders a move without check suffixes.
func sanBody(pos *chess.Position, legal []chess.Move, move chess.Move) string {
	if move.Castle != chess.NoCastle {
		return move.Castle.String()
	}

	piece := chess.ExtractPiece(pos.Board.At(move.From))
	capture := move.EnPassant || pos.Board.At(move.To) != chess.Empty

	var sb strings.Builder
	if piece == chess.Pawn {
		if capture {
			sb.WriteByte(byte(move.From.Col()))
		}
	} else {
		sb.WriteByte(piece.Letter())
		sb.WriteString(disambiguation(pos, legal, move, piece))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	if move.Promotion != chess.Empty {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell move apart
// from other legal moves of the same piece type to the same square.
func disambiguation(pos *chess.Position, legal []chess.Move, move chess.Move, piece chess.Piece) string {
	ambiguous := false
	uniqCol := true
	uniqRank := true
	for _, other := range legal {
		if other.From == move.From || other.To != move.To {
			continue
		}
		if chess.ExtractPiece(pos.Board.At(other.From)) != piece {
			continue
		}
		ambiguous = true
		if other.From.Col() == move.From.Col() {
			uniqCol = false
		}
		if other.From.Rank() == move.From.Rank() {
			uniqRank = false
		}
	}

	switch {
	case !ambiguous:
		return ""
	case uniqCol:
		return string(rune(move.From.Col()))
	case uniqRank:
		return string(rune(move.From.Rank()))
	}
	return move.From.String()
}

// sanPieces maps SAN piece letters to piece types.
var sanPieces = map[byte]chess.Piece{
	'K': chess.King,
	'Q': chess.Queen,
	'R': chess.Rook,
	'B': chess.Bishop,
	'N': chess.Knight,
}

// sanMove is SAN text split into the parts that select a legal move. A zero
// fromCol or fromRank means the text did not give one.
type sanMove struct {
	castle    chess.CastleSide
	piece     chess.Piece
	fromCol   chess.Col
	fromRank  chess.Rank
	to        chess.Square
	promotion chess.Piece
}

// ParseSAN resolves SAN text to a legal move in pos. Check, mate and
// annotation suffixes are ignored, "0-0" is accepted for "O-O", the '='
// before a promotion piece is optional and its letter may be lowercase, and
// a redundant file or rank is accepted. Text matching several legal moves
// fails with ErrAmbiguousMove.
func ParseSAN(pos *chess.Position, s string) (chess.Move, error) {
	text := normalizeSAN(s)
	if text == "" {
		return chess.Move{}, sanError(s, errors.ErrMalformedNotation, "a move", "")
	}
	want, ok := splitSAN(text)
	if !ok {
		return chess.Move{}, sanError(s, errors.ErrMalformedNotation, "standard algebraic notation", text)
	}

	var found []chess.Move
	promotionMissing := false
	for _, m := range LegalMoves(pos) {
		if !want.selects(pos, m) {
			continue
		}
		if m.Promotion != want.promotion {
			promotionMissing = promotionMissing || want.promotion == chess.Empty
			continue
		}
		found = append(found, m)
	}

	switch {
	case len(found) == 1:
		return found[0], nil
	case len(found) > 1:
		return chess.Move{}, sanError(s, errors.ErrAmbiguousMove, "a file or rank to tell the moves apart", text)
	case promotionMissing:
		return chess.Move{}, &errors.MoveError{Err: errors.ErrPromotionRequired, FEN: FEN(pos), Move: s}
	}
	return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, FEN: FEN(pos), Move: s}
}

func sanError(s string, err error, expected, got string) error {
	return &errors.NotationError{
		Err:      err,
		Input:    s,
		Field:    "san",
		Expected: expected,
		Got:      got,
	}
}

// normalizeSAN strips suffixes and the promotion '='.
func normalizeSAN(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "+#?!"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "0", "O")
	return strings.ReplaceAll(s, "=", "")
}

// splitSAN parses normalized SAN text. It reports false when the text is
// not shaped like a move.
func splitSAN(text string) (sanMove, bool) {
	switch text {
	case "O-O":
		return sanMove{castle: chess.Kingside}, true
	case "O-O-O":
		return sanMove{castle: chess.Queenside}, true
	}

	m := sanMove{piece: chess.Pawn, promotion: chess.Empty}
	if p, ok := sanPieces[text[0]]; ok {
		m.piece = p
		text = text[1:]
	}
	if n := len(text); m.piece == chess.Pawn && n > 2 {
		if p, ok := uciPromotions[strings.ToLower(text[n-1:])[0]]; ok {
			m.promotion = p
			text = text[:n-1]
		}
	}

	n := len(text)
	if n < 2 {
		return m, false
	}
	to, ok := chess.ParseSquare(text[n-2:])
	if !ok {
		return m, false
	}
	m.to = to

	from := strings.TrimSuffix(text[:n-2], "x")
	for i := 0; i < len(from); i++ {
		c := from[i]
		switch {
		case m.fromCol == 0 && m.fromRank == 0 && c >= byte(chess.FirstCol) && c <= byte(chess.LastCol):
			m.fromCol = chess.Col(c)
		case m.fromRank == 0 && c >= byte(chess.FirstRank) && c <= byte(chess.LastRank):
			m.fromRank = chess.Rank(c)
		default:
			return m, false
		}
	}
	return m, true
}

// selects reports whether legal move m fits everything the text gave except
// the promotion piece.
func (s sanMove) selects(pos *chess.Position, m chess.Move) bool {
	if s.castle != chess.NoCastle {
		return m.Castle == s.castle
	}
	return m.Castle == chess.NoCastle &&
		m.To == s.to &&
		chess.ExtractPiece(pos.Board.At(m.From)) == s.piece &&
		(s.fromCol == 0 || m.From.Col() == s.fromCol) &&
		(s.fromRank == 0 || m.From.Rank() == s.fromRank)
}

// UCILineToSAN converts a sequence of UCI moves played from pos into SAN.
// It stops at the first move that is malformed or illegal, reporting its
// 1-based ply.
func UCILineToSAN(pos *chess.Position, line []string) ([]string, error) {
	current := *pos
	sans := make([]string, 0, len(line))
	for i, text := range line {
		move, err := ParseUCIMove(text)
		if err == nil {
			move, err = resolveMove(&current, move)
		}
		if err != nil {
			return sans, &errors.MoveError{Err: err, FEN: FEN(&current), Move: text, Ply: i + 1}
		}
		sans = append(sans, SAN(&current, move))
		current = makeMove(&current, move)
	}
	return sans, nil
}
