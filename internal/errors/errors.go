// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidState indicates an operation on a game that has already ended,
	// or an undo with nothing to undo.
	ErrInvalidState = errors.New("invalid game state")

	// ErrMalformedNotation indicates FEN, UCI or SAN text that cannot be parsed.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrPromotionRequired indicates a pawn move to the last rank submitted
	// without a promotion piece. It is also an ErrIllegalMove.
	ErrPromotionRequired = fmt.Errorf("promotion piece required: %w", ErrIllegalMove)

	// ErrAmbiguousMove indicates SAN that matches more than one legal move.
	// It is also an ErrMalformedNotation.
	ErrAmbiguousMove = fmt.Errorf("ambiguous move: %w", ErrMalformedNotation)

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game session id.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with the context of a rejected move: the position it
// was played in, the move text and the ply. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	FEN  string // Position the move was attempted in (if known)
	Move string // The move text that caused the error (if applicable)
	Ply  int    // 1-based ply within a move sequence (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError represents a parse failure in FEN, UCI or SAN text.
type NotationError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Which part of the input was at fault (e.g. "castling")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "notation error"
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
