// analysis.go - Position analysis
package main

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// numWorkers resolves the configured worker count.
func numWorkers(cfg *config.Config) int {
	if cfg.Analysis.Workers > 0 {
		return cfg.Analysis.Workers
	}
	return runtime.NumCPU()
}

// analyse replays moves from fen and reports on the resulting position.
// perftWorkers > 1 searches root moves concurrently.
func analyse(ctx context.Context, fen string, moves []string, cfg *config.Config, perftWorkers int) (*output.Report, error) {
	game := engine.NewGame()
	if fen != "" {
		var err error
		if game, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}

	report := &output.Report{StartFEN: game.StartFEN()}
	for _, m := range moves {
		if err := game.PlayUCI(m); err != nil {
			return nil, err
		}
	}
	if cfg.Output.UseSAN {
		report.Moves = game.Moves()
	} else {
		for _, m := range game.PlayedMoves() {
			report.Moves = append(report.Moves, m.UCI())
		}
	}

	pos := game.Position()
	status := engine.GameStatus(&pos)
	report.FEN = engine.FEN(&pos)
	report.SideToMove = pos.ToMove.String()
	report.Status = status.String()
	report.Result = status.Result()
	report.InCheck = engine.IsInCheck(&pos, pos.ToMove)
	report.Repetition = engine.RepetitionCount(&pos)
	report.Signature = hashing.Signature(&pos)

	if cfg.Output.ShowMoves && !status.IsTerminal() {
		for _, m := range engine.LegalMoves(&pos) {
			if cfg.Output.UseSAN {
				report.LegalMoves = append(report.LegalMoves, engine.SAN(&pos, m))
			} else {
				report.LegalMoves = append(report.LegalMoves, m.UCI())
			}
		}
	}

	if depth := cfg.Analysis.PerftDepth; depth > 0 {
		perft, err := runPerft(ctx, &pos, depth, cfg.Analysis.Divide, perftWorkers)
		if err != nil {
			return nil, err
		}
		report.Perft = perft
	}
	return report, nil
}

func runPerft(ctx context.Context, pos *chess.Position, depth int, divide bool, workers int) (*output.PerftReport, error) {
	perft := &output.PerftReport{Depth: depth}
	if divide {
		counts := engine.Divide(pos, depth)
		keys := maps.Keys(counts)
		slices.Sort(keys)
		for _, k := range keys {
			perft.Divide = append(perft.Divide, output.DivideEntry{Move: k, Nodes: counts[k]})
			perft.Nodes += counts[k]
		}
		return perft, nil
	}

	if workers > 1 {
		nodes, err := engine.PerftParallel(ctx, pos, depth, workers)
		if err != nil {
			return nil, err
		}
		perft.Nodes = nodes
		return perft, nil
	}
	perft.Nodes = engine.Perft(pos, depth)
	return perft, nil
}

// splitMoves splits a move list on whitespace. An empty list is nil.
func splitMoves(s string) []string {
	moves := strings.Fields(s)
	if len(moves) == 0 {
		return nil
	}
	return moves
}
