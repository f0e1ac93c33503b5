package main

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const initialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func testConfig() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(0).Build()
}

func TestAnalyse_InitialPosition(t *testing.T) {
	t.Parallel()
	report, err := analyse(context.Background(), "", nil, testConfig(), 1)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, report.StartFEN, initialFEN)
	testutil.AssertEqual(t, report.FEN, initialFEN)
	testutil.AssertEqual(t, report.SideToMove, "White")
	testutil.AssertEqual(t, report.Status, "in progress")
	testutil.AssertEqual(t, report.Result, "*")
	testutil.AssertEqual(t, report.Repetition, 1)
	testutil.AssertEqual(t, len(report.LegalMoves), 20)
	testutil.AssertNil(t, report.Perft)
}

func TestAnalyse_ReplaysMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		useSAN     bool
		wantMoves  []string
		wantStatus string
	}{
		{"san", true, []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"}, "checkmate, White wins"},
		{"uci", false, []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}, "checkmate, White wins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			cfg.Output.UseSAN = tt.useSAN

			moves := testutil.Line("e2e4 e7e5 d1h5 b8c6 f1c4 g8f6 h5f7")
			report, err := analyse(context.Background(), "", moves, cfg, 1)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, report.Moves, tt.wantMoves)
			testutil.AssertEqual(t, report.Status, tt.wantStatus)
			testutil.AssertEqual(t, report.Result, "1-0")
			testutil.AssertTrue(t, report.InCheck)
			testutil.AssertNil(t, report.LegalMoves, "no legal moves listed after mate")
		})
	}
}

func TestAnalyse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantErr error
	}{
		{"bad fen", "8/8/8 w - - 0 1", nil, chesserrors.ErrMalformedNotation},
		{"bad move text", "", []string{"e2"}, chesserrors.ErrMalformedNotation},
		{"illegal move", "", []string{"e2e5"}, chesserrors.ErrIllegalMove},
		{"move after mate", "", testutil.Line("f2f3 e7e5 g2g4 d8h4 a2a3"), chesserrors.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := analyse(context.Background(), tt.fen, tt.moves, testConfig(), 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("analyse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnalyse_Perft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		depth   int
		divide  bool
		workers int
		want    uint64
	}{
		{"sequential", 3, false, 1, 8902},
		{"parallel", 3, false, 4, 8902},
		{"divide", 2, true, 1, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.NewConfigBuilder().WithPerft(tt.depth, tt.divide).Build()
			report, err := analyse(context.Background(), "", nil, cfg, tt.workers)
			testutil.AssertNoError(t, err)
			testutil.AssertNotNil(t, report.Perft)
			testutil.AssertEqual(t, report.Perft.Depth, tt.depth)
			testutil.AssertEqual(t, report.Perft.Nodes, tt.want)
			if tt.divide {
				testutil.AssertEqual(t, len(report.Perft.Divide), 20)
				testutil.AssertEqual(t, report.Perft.Divide[0], output.DivideEntry{Move: "a2a3", Nodes: 20})
			}
		})
	}
}

func TestAnalyse_PerftCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.NewConfigBuilder().WithPerft(4, false).Build()
	_, err := analyse(ctx, "", nil, cfg, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("analyse() error = %v, want %v", err, context.Canceled)
	}
}

func TestNumWorkers(t *testing.T) {
	t.Parallel()
	cfg := config.NewConfigBuilder().WithWorkers(3).Build()
	testutil.AssertEqual(t, numWorkers(cfg), 3)

	cfg = config.NewConfigBuilder().Build()
	testutil.AssertTrue(t, numWorkers(cfg) >= 1)
}
