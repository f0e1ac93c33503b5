// Package testutil holds the assertions and fixtures shared by the
// chessrules-go test suites.
//
// The assertions take a T rather than *testing.T so that their failure
// paths can be exercised with a recording stand-in.
package testutil

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// T is the subset of testing.TB the assertions report through.
type T interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// positionOptions compare positions by what FEN can express. History is
// bookkeeping for repetition and never survives a FEN round trip.
var positionOptions = cmp.Options{
	cmpopts.IgnoreFields(chess.Position{}, "History"),
	cmpopts.EquateEmpty(),
}

// moveSetOptions compare move lists as sets; generation order is not part
// of any contract.
var moveSetOptions = cmp.Options{
	cmpopts.SortSlices(lessMove),
	cmpopts.EquateEmpty(),
}

func lessMove(a, b chess.Move) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	return a.Promotion < b.Promotion
}

// PositionDiff returns the cmp diff (-want +got) between two positions,
// ignoring repetition history.
func PositionDiff(got, want chess.Position) string {
	return cmp.Diff(want, got, positionOptions)
}

// MoveSetDiff returns the cmp diff (-want +got) between two move lists,
// ignoring order.
func MoveSetDiff(got, want []chess.Move) string {
	return cmp.Diff(want, got, moveSetOptions)
}

// AssertEqual compares got and want using cmp.Diff.
func AssertEqual(t T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertPositionEqual compares two positions square by square along with
// side to move, castling rights, en passant square and both clocks.
func AssertPositionEqual(t T, got, want chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := PositionDiff(got, want); diff != "" {
		fail(t, msgAndArgs, "position mismatch (-want +got):\n%s", diff)
	}
}

// AssertMovesEqual compares two move lists as unordered sets.
func AssertMovesEqual(t T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := MoveSetDiff(got, want); diff != "" {
		fail(t, msgAndArgs, "move set mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertNil fails unless got is nil or a typed nil.
func AssertNil(t T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		fail(t, msgAndArgs, "expected nil but got %v", got)
	}
}

// AssertNotNil fails if got is nil or a typed nil.
func AssertNotNil(t T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(got) {
		fail(t, msgAndArgs, "expected non-nil value but got nil")
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// fail reports one failure, prefixed by the caller's context if given.
func fail(t T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Errorf("%s", text)
}

// formatMessage turns the optional context arguments into a prefix. A
// leading string is used as a format for the rest.
func formatMessage(msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) > 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(s, msgAndArgs[1:]...)
		}
	}
	return fmt.Sprint(msgAndArgs[0])
}
