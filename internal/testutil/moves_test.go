package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "e2e4", []string{"e2e4"}},
		{"extra whitespace", "  e2e4\te7e5\n g1f3 ", []string{"e2e4", "e7e5", "g1f3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			AssertEqual(t, got, tt.want)
		})
	}
}

func TestUCIStrings_Sorted(t *testing.T) {
	moves := []chess.Move{
		Move("g1", "f3"),
		Move("e7", "e8", chess.Queen),
		Move("a2", "a4"),
	}
	AssertEqual(t, UCIStrings(moves), []string{"a2a4", "e7e8q", "g1f3"})
}

func TestSorted_DoesNotModifyInput(t *testing.T) {
	in := []string{"b", "a", "c"}
	got := Sorted(in)
	AssertEqual(t, got, []string{"a", "b", "c"})
	AssertEqual(t, in, []string{"b", "a", "c"})
}

func TestSquare(t *testing.T) {
	AssertEqual(t, Square("a1"), chess.Square(0))
	AssertEqual(t, Square("h8"), chess.Square(63))

	defer func() {
		if recover() == nil {
			t.Error("Square(\"z9\") did not panic")
		}
	}()
	Square("z9")
}
