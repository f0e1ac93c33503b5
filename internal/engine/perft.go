package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Draw rules are not applied; only positions without legal moves end a line.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := makeMove(pos, m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by UCI text.
func Divide(pos *chess.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range LegalMoves(pos) {
		next := makeMove(pos, m)
		result[m.UCI()] = Perft(&next, depth-1)
	}
	return result
}

// PerftParallel is Perft with the root moves searched concurrently by at
// most workers goroutines (unlimited when workers <= 0). It returns early
// with the context's error if ctx is cancelled.
func PerftParallel(ctx context.Context, pos *chess.Position, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(pos, depth), nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	moves := LegalMoves(pos)
	counts := make([]uint64, len(moves))
	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next := makeMove(pos, m)
			counts[i] = Perft(&next, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes, nil
}
