package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Reference node counts from the standard perft suite.
var perftSuite = []struct {
	name   string
	fen    string
	counts []uint64 // indexed by depth-1
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", []uint64{48, 2039, 97862}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", []uint64{14, 191, 2812, 43238}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
}

// perftShortLimit caps node counts run under -short.
const perftShortLimit = 20000

func TestPerft(t *testing.T) {
	t.Parallel()
	for _, tt := range perftSuite {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			for i, want := range tt.counts {
				if testing.Short() && want > perftShortLimit {
					continue
				}
				depth := i + 1
				if got := Perft(&pos, depth); got != want {
					t.Errorf("Perft(depth %d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	pos := NewInitialPosition()
	testutil.AssertEqual(t, Perft(&pos, 0), uint64(1))
}

func TestDivide(t *testing.T) {
	pos := NewInitialPosition()

	result := Divide(&pos, 2)
	testutil.AssertEqual(t, len(result), 20)
	testutil.AssertEqual(t, result["e2e4"], uint64(20))
	testutil.AssertEqual(t, result["g1f3"], uint64(20))

	var total uint64
	for _, n := range result {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))

	testutil.AssertEqual(t, len(Divide(&pos, 0)), 0)
}

func TestPerftParallel(t *testing.T) {
	t.Parallel()
	for _, tt := range perftSuite {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			depth := 3
			if testing.Short() {
				depth = 2
			}
			got, err := PerftParallel(context.Background(), &pos, depth, 4)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.counts[depth-1])
		})
	}
}

func TestPerftParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos := NewInitialPosition()
	_, err := PerftParallel(ctx, &pos, 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PerftParallel() error = %v, want context.Canceled", err)
	}
}
