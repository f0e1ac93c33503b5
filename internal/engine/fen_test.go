package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseFEN_RoundTrip(t *testing.T) {
	t.Parallel()
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"8/8/8/8/8/kq6/8/K7 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 99 120",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos, err := ParseFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, FEN(&pos), fen)
		})
	}
}

func TestParseFEN_Fields(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/4pP2/8/8/R3K2R b Kq f3 7 42")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.ToMove, chess.Black)
	testutil.AssertEqual(t, pos.Castling, chess.WhiteKingside|chess.BlackQueenside)
	testutil.AssertEqual(t, pos.EnPassant, testutil.Square("f3"))
	testutil.AssertEqual(t, pos.HalfmoveClock, uint(7))
	testutil.AssertEqual(t, pos.FullmoveNumber, uint(42))
	testutil.AssertEqual(t, pos.Board.Get('e', '8'), chess.B(chess.King))
	testutil.AssertEqual(t, pos.Board.Get('f', '4'), chess.W(chess.Pawn))
	testutil.AssertEqual(t, pos.Board.Get('e', '4'), chess.B(chess.Pawn))
}

func TestParseFEN_FourFields(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos.HalfmoveClock, uint(0))
	testutil.AssertEqual(t, pos.FullmoveNumber, uint(1))
}

func TestParseFEN_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"digit overflow", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"piece after full rank", "rnbqkbnr/pppppppp/8p/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"consecutive digits", "rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"no white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQQBNR w kq - 0 1"},
		{"two black kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNk w KQkq - 0 1"},
		{"pawn on last rank", "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"castling out of order", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w QKkq - 0 1"},
		{"castling repeated", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKkq - 0 1"},
		{"castling bad letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1"},
		{"castling without rook", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w KQkq - 0 1"},
		{"castling with moved king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1KNR w KQkq - 0 1"},
		{"en passant bad square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1"},
		{"en passant for side to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
		{"side not to move in check", "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) succeeded, want error", tt.fen)
			}
			if !errors.Is(err, chesserrors.ErrMalformedNotation) {
				t.Errorf("ParseFEN(%q) error = %v, want ErrMalformedNotation", tt.fen, err)
			}
			var notationErr *chesserrors.NotationError
			if !errors.As(err, &notationErr) {
				t.Errorf("ParseFEN(%q) error %T is not a *NotationError", tt.fen, err)
			}
		})
	}
}

func TestInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	testutil.AssertEqual(t, FEN(&pos), InitialFEN)

	parsed := MustParseFEN(InitialFEN)
	testutil.AssertEqual(t, parsed.Board, pos.Board)
	testutil.AssertEqual(t, parsed.Castling, chess.AllCastling)
	testutil.AssertEqual(t, parsed.EnPassant, chess.NoSquare)
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFEN() did not panic on invalid input")
		}
	}()
	MustParseFEN("not a fen")
}

func TestFEN_AfterMoves(t *testing.T) {
	pos := NewInitialPosition()
	for _, step := range []struct {
		uci  string
		want string
	}{
		{"e2e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"c7c5", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"},
		{"g1f3", "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
	} {
		move, err := ParseUCI(&pos, step.uci)
		testutil.AssertNoError(t, err, step.uci)
		pos, err = Apply(&pos, move)
		testutil.AssertNoError(t, err, step.uci)
		testutil.AssertEqual(t, FEN(&pos), step.want, step.uci)
	}
}
