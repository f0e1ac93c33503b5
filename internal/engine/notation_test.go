package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseUCIMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    chess.Move
		wantErr bool
	}{
		{"e2e4", testutil.Move("e2", "e4"), false},
		{"e7e8q", testutil.Move("e7", "e8", chess.Queen), false},
		{"a7a8n", testutil.Move("a7", "a8", chess.Knight), false},
		{"", chess.Move{}, true},
		{"e2", chess.Move{}, true},
		{"e2e4e5", chess.Move{}, true},
		{"e2e9", chess.Move{}, true},
		{"i2e4", chess.Move{}, true},
		{"e7e8k", chess.Move{}, true},
		{"E2E4", chess.Move{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseUCIMove(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrMalformedNotation) {
					t.Errorf("ParseUCIMove(%q) error = %v, want ErrMalformedNotation", tt.input, err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseUCI(t *testing.T) {
	pos := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	move, err := ParseUCI(&pos, "e1g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move.Castle, chess.Kingside)

	_, err = ParseUCI(&pos, "e1e3")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrIllegalMove))

	_, err = ParseUCI(&pos, "e1")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrMalformedNotation))
}

func TestSAN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight move", InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"en passant", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", "f5e6", "fxe6"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"file disambiguation", "6k1/8/8/8/8/8/4K3/R6R w - - 0 1", "a1d1", "Rad1"},
		{"rank disambiguation", "6k1/8/8/R7/8/8/4K3/R7 w - - 0 1", "a1a3", "R1a3"},
		{"square disambiguation", "6k1/8/8/8/Q7/8/7K/Q2Q4 w - - 0 1", "a1d4", "Qa1d4"},
		{"pinned piece needs no disambiguation", "4k3/8/8/8/8/8/4r3/N3K1N1 w - - 0 1", "g1e2", "Nxe2"},
		{"promotion with check", "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8q", "e8=Q+"},
		{"underpromotion", "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7e8n", "e8=N"},
		{"capture promotion", "3r3k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7d8r", "exd8=R+"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"mate", "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4", "h5f7", "Qxf7#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			move, err := ParseUCI(&pos, tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, SAN(&pos, move), tt.want)

			parsed, err := ParseSAN(&pos, tt.want)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, parsed, move)
		})
	}
}

func TestParseSAN_Variants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		san  string
		want string
	}{
		{"no check suffix needed", "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e8=Q", "e7e8q"},
		{"promotion without equals", "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e8N", "e7e8n"},
		{"zero castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "0-0-0", "e1c1"},
		{"annotation", InitialFEN, "e4!?", "e2e4"},
		{"surrounding whitespace", InitialFEN, " Nf3 ", "g1f3"},
		{"lowercase promotion", "7k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e8=q", "e7e8q"},
		{"lowercase capture promotion", "3r3k/4P3/8/8/8/8/8/4K3 w - - 0 1", "exd8=r+", "e7d8r"},
		{"redundant file", InitialFEN, "Ngf3", "g1f3"},
		{"redundant rank", InitialFEN, "N1f3", "g1f3"},
		{"redundant square", InitialFEN, "Ng1f3", "g1f3"},
		{"capture marker", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "exd5", "e4d5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			move, err := ParseSAN(&pos, tt.san)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.UCI(), tt.want)
		})
	}
}

func TestParseSAN_Errors(t *testing.T) {
	t.Parallel()
	const (
		castling  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
		promotion = "7k/4P3/8/8/8/8/8/4K3 w - - 0 1"
		twoKnight = "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1"
	)
	tests := []struct {
		name string
		fen  string
		san  string
		want error
	}{
		{"empty", InitialFEN, "", chesserrors.ErrMalformedNotation},
		{"garbage", InitialFEN, "Zz9", chesserrors.ErrMalformedNotation},
		{"only suffix", InitialFEN, "+", chesserrors.ErrMalformedNotation},
		{"piece promotion", promotion, "Ke8=Q", chesserrors.ErrMalformedNotation},
		{"illegal king move", InitialFEN, "Ke2", chesserrors.ErrIllegalMove},
		{"illegal pawn move", InitialFEN, "e5", chesserrors.ErrIllegalMove},
		{"illegal castle", InitialFEN, "O-O", chesserrors.ErrIllegalMove},
		{"wrong file", InitialFEN, "Nbf3", chesserrors.ErrIllegalMove},
		{"castling written as king move", castling, "Kg1", chesserrors.ErrIllegalMove},
		{"missing promotion", promotion, "e8", chesserrors.ErrPromotionRequired},
		{"ambiguous knight", twoKnight, "Nd2", chesserrors.ErrAmbiguousMove},
		{"ambiguous is malformed", twoKnight, "Nd2", chesserrors.ErrMalformedNotation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			_, err := ParseSAN(&pos, tt.san)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSAN(%q) error = %v, want %v", tt.san, err, tt.want)
			}
		})
	}

	pos := MustParseFEN(twoKnight)
	for _, san := range []string{"Nbd2", "Nfd2", "N3d2", "N1d2"} {
		_, err := ParseSAN(&pos, san)
		testutil.AssertNoError(t, err, "ParseSAN(%q)", san)
	}
}

func TestUCILineToSAN(t *testing.T) {
	pos := NewInitialPosition()

	got, err := UCILineToSAN(&pos, testutil.Line("e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5c6 d7c6 e1g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "O-O"})
	testutil.AssertEqual(t, FEN(&pos), InitialFEN, "input position unchanged")
}

func TestUCILineToSAN_StopsAtBadMove(t *testing.T) {
	pos := NewInitialPosition()

	got, err := UCILineToSAN(&pos, testutil.Line("e2e4 e7e5 e4e5 g8f6"))
	testutil.AssertEqual(t, got, []string{"e4", "e5"})
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Fatalf("UCILineToSAN() error = %v, want ErrIllegalMove", err)
	}
	var moveErr *chesserrors.MoveError
	testutil.AssertTrue(t, errors.As(err, &moveErr))
	testutil.AssertEqual(t, moveErr.Ply, 3)
	testutil.AssertEqual(t, moveErr.Move, "e4e5")
}
