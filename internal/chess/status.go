package chess

// StatusKind enumerates the states of the game state machine.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawThreefoldRepetition
	DrawInsufficientMaterial
)

// String returns a short name for the status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw by fifty-move rule"
	case DrawThreefoldRepetition:
		return "draw by threefold repetition"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}

// Status is the result of a game status query. Winner is only meaningful
// when Kind is Checkmate.
type Status struct {
	Kind   StatusKind
	Winner Colour
}

// IsTerminal reports whether no further moves may be applied.
func (s Status) IsTerminal() bool {
	return s.Kind != InProgress
}

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool {
	return s.Kind != InProgress && s.Kind != Checkmate
}

// Result returns the PGN result string: "1-0", "0-1", "1/2-1/2" or "*".
func (s Status) Result() string {
	switch {
	case s.Kind == Checkmate && s.Winner == White:
		return "1-0"
	case s.Kind == Checkmate:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String returns a human readable description of the status.
func (s Status) String() string {
	if s.Kind == Checkmate {
		return s.Kind.String() + ", " + s.Winner.String() + " wins"
	}
	return s.Kind.String()
}
