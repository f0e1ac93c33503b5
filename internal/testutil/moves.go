package testutil

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Line splits a space separated move list ("e2e4 e7e5") into its moves.
func Line(s string) []string {
	return strings.Fields(s)
}

// UCIStrings returns the UCI text of each move, sorted, so that move sets
// from different generators can be compared with AssertEqual.
func UCIStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

// Sorted returns a sorted copy of s.
func Sorted(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Square parses an algebraic square name, panicking on bad input. It is
// meant for literal squares in test tables.
func Square(name string) chess.Square {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		panic("testutil: bad square " + name)
	}
	return sq
}

// Move builds a move from two square names and an optional promotion piece.
func Move(from, to string, promotion ...chess.Piece) chess.Move {
	m := chess.Move{From: Square(from), To: Square(to)}
	if len(promotion) > 0 {
		m.Promotion = promotion[0]
	}
	return m
}
