package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// recorder stands in for *testing.T and keeps every reported failure.
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func startPosition() chess.Position {
	p := chess.NewPosition()
	p.SetupInitialPosition()
	return p
}

func TestAssertions_Report(t *testing.T) {
	t.Parallel()

	var typedNil *int
	tests := []struct {
		name   string
		assert func(T)
		fails  bool
		substr string
	}{
		{"equal ints", func(r T) { AssertEqual(r, 42, 42) }, false, ""},
		{"unequal slices", func(r T) { AssertEqual(r, []int{1, 2}, []int{1, 3}) }, true, "mismatch"},
		{"no error", func(r T) { AssertNoError(r, nil) }, false, ""},
		{"unexpected error", func(r T) { AssertNoError(r, errors.New("boom")) }, true, "boom"},
		{"expected error", func(r T) { AssertError(r, errors.New("x")) }, false, ""},
		{"missing error", func(r T) { AssertError(r, nil) }, true, "expected error"},
		{"contains", func(r T) { AssertContains(r, "e2e4 e7e5", "e7e5") }, false, ""},
		{"does not contain", func(r T) { AssertContains(r, "e2e4", "d2d4") }, true, `"d2d4"`},
		{"not contains", func(r T) { AssertNotContains(r, "e2e4", "d2d4") }, false, ""},
		{"contains unwanted", func(r T) { AssertNotContains(r, "e2e4", "e4") }, true, "should not contain"},
		{"true", func(r T) { AssertTrue(r, true) }, false, ""},
		{"false as true", func(r T) { AssertTrue(r, false) }, true, "expected true"},
		{"false", func(r T) { AssertFalse(r, false) }, false, ""},
		{"true as false", func(r T) { AssertFalse(r, true) }, true, "expected false"},
		{"typed nil", func(r T) { AssertNil(r, typedNil) }, false, ""},
		{"non-nil as nil", func(r T) { AssertNil(r, 1) }, true, "expected nil"},
		{"non-nil", func(r T) { AssertNotNil(r, "x") }, false, ""},
		{"nil as non-nil", func(r T) { AssertNotNil(r, nil) }, true, "expected non-nil"},
		{"context prefix", func(r T) { AssertTrue(r, false, "ply %d", 7) }, true, "ply 7: expected true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			tt.assert(r)
			if !tt.fails {
				AssertEqual(t, len(r.failures), 0, "failures: %v", r.failures)
				return
			}
			AssertEqual(t, len(r.failures), 1)
			if len(r.failures) == 1 {
				AssertContains(t, r.failures[0], tt.substr)
			}
		})
	}
}

func TestAssertPositionEqual(t *testing.T) {
	t.Parallel()

	base := startPosition()

	withHistory := base.Clone()
	withHistory.History = []uint64{1, 2, 3}

	emptyHistory := base.Clone()
	emptyHistory.History = []uint64{}

	moved := base.Clone()
	moved.Board.Put(Square("e4"), moved.Board.At(Square("e2")))
	moved.Board.Put(Square("e2"), chess.Empty)

	noCastle := base.Clone()
	noCastle.Castling = noCastle.Castling.Without(chess.WhiteKingside)

	epSet := base.Clone()
	epSet.EnPassant = Square("e3")

	clock := base.Clone()
	clock.HalfmoveClock = 3

	tests := []struct {
		name   string
		got    chess.Position
		fails  bool
		substr string
	}{
		{"identical", base.Clone(), false, ""},
		{"history ignored", withHistory, false, ""},
		{"empty history equals nil", emptyHistory, false, ""},
		{"board differs", moved, true, "Board"},
		{"castling differs", noCastle, true, "Castling"},
		{"en passant differs", epSet, true, "EnPassant"},
		{"halfmove clock differs", clock, true, "HalfmoveClock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			AssertPositionEqual(r, tt.got, base)
			if !tt.fails {
				AssertEqual(t, len(r.failures), 0, "failures: %v", r.failures)
				return
			}
			AssertEqual(t, len(r.failures), 1)
			AssertContains(t, PositionDiff(tt.got, base), tt.substr)
		})
	}
}

func TestAssertMovesEqual(t *testing.T) {
	t.Parallel()

	want := []chess.Move{
		Move("g1", "f3"),
		Move("e2", "e4"),
		Move("e7", "e8", chess.Queen),
	}

	tests := []struct {
		name  string
		got   []chess.Move
		fails bool
	}{
		{"same order", []chess.Move{Move("g1", "f3"), Move("e2", "e4"), Move("e7", "e8", chess.Queen)}, false},
		{"shuffled", []chess.Move{Move("e7", "e8", chess.Queen), Move("g1", "f3"), Move("e2", "e4")}, false},
		{"missing move", []chess.Move{Move("g1", "f3"), Move("e2", "e4")}, true},
		{"different promotion", []chess.Move{Move("g1", "f3"), Move("e2", "e4"), Move("e7", "e8", chess.Knight)}, true},
		{"extra move", []chess.Move{Move("g1", "f3"), Move("e2", "e4"), Move("e7", "e8", chess.Queen), Move("d2", "d4")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &recorder{}
			AssertMovesEqual(r, tt.got, want)
			AssertEqual(t, len(r.failures) == 1, tt.fails, "failures: %v", r.failures)
		})
	}

	t.Run("empty equals nil", func(t *testing.T) {
		t.Parallel()
		r := &recorder{}
		AssertMovesEqual(r, []chess.Move{}, nil)
		AssertEqual(t, len(r.failures), 0)
	})
}

func TestFormatMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"after e2e4"}, "after e2e4"},
		{"single value", []interface{}{42}, "42"},
		{"format", []interface{}{"ply %d of %s", 3, "game"}, "ply 3 of game"},
		{"non-string leader", []interface{}{7, "ignored"}, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			AssertEqual(t, formatMessage(tt.args...), tt.want)
		})
	}
}
