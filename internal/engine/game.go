package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game holds one live position together with the moves that led to it, so
// that moves can be undone. A Game is not safe for concurrent use.
type Game struct {
	start    chess.Position
	current  chess.Position
	previous []chess.Position // position before each played move
	moves    []chess.Move
	san      []string
}

// NewGame starts a game from the standard initial position.
func NewGame() *Game {
	return newGameAt(NewInitialPosition())
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGameAt(pos), nil
}

func newGameAt(pos chess.Position) *Game {
	return &Game{start: pos, current: pos.Clone()}
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.current.Clone()
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return FEN(&g.current)
}

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string {
	return FEN(&g.start)
}

// Status classifies the current position.
func (g *Game) Status() chess.Status {
	return GameStatus(&g.current)
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(&g.current)
}

// LegalMovesFrom returns the legal moves of the piece on from.
func (g *Game) LegalMovesFrom(from chess.Square) []chess.Move {
	return LegalMovesFrom(&g.current, from)
}

// Play applies a move. On error the game is unchanged.
func (g *Game) Play(move chess.Move) error {
	next, err := Apply(&g.current, move)
	if err != nil {
		return g.plyError(err)
	}
	g.record(move, next)
	return nil
}

// PlayUCI applies a move given in UCI notation.
func (g *Game) PlayUCI(s string) error {
	move, err := ParseUCIMove(s)
	if err != nil {
		return err
	}
	return g.Play(move)
}

// PlaySAN applies a move given in SAN.
func (g *Game) PlaySAN(s string) error {
	move, err := ParseSAN(&g.current, s)
	if err != nil {
		return g.plyError(err)
	}
	return g.Play(move)
}

// record pushes the played move. SAN is rendered against the position the
// move was played in, with the flags resolved by Apply.
func (g *Game) record(move chess.Move, next chess.Position) {
	resolved, _ := resolveMove(&g.current, move)
	g.san = append(g.san, SAN(&g.current, resolved))
	g.moves = append(g.moves, resolved)
	g.previous = append(g.previous, g.current)
	g.current = next
}

func (g *Game) plyError(err error) error {
	if moveErr, ok := err.(*errors.MoveError); ok && moveErr.Ply == 0 {
		moveErr.Ply = len(g.moves) + 1
	}
	return err
}

// Undo takes back the last move. It fails with ErrInvalidState when no move
// has been played.
func (g *Game) Undo() error {
	n := len(g.previous)
	if n == 0 {
		return errors.Wrap(errors.ErrInvalidState, "nothing to undo")
	}
	g.current = g.previous[n-1]
	g.previous = g.previous[:n-1]
	g.moves = g.moves[:n-1]
	g.san = g.san[:n-1]
	return nil
}

// Reset returns the game to its starting position.
func (g *Game) Reset() {
	g.current = g.start.Clone()
	g.previous = nil
	g.moves = nil
	g.san = nil
}

// Moves returns the SAN of every move played so far.
func (g *Game) Moves() []string {
	return append([]string(nil), g.san...)
}

// PlayedMoves returns the moves played so far.
func (g *Game) PlayedMoves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.moves)
}

// Snapshot is a read-only view of a game for display and advice
// components.
type Snapshot struct {
	FEN        string   `json:"fen"`
	SideToMove string   `json:"sideToMove"`
	Status     string   `json:"status"`
	Result     string   `json:"result"`
	Terminal   bool     `json:"terminal"`
	InCheck    bool     `json:"inCheck"`
	LegalMoves []string `json:"legalMoves"`
	History    []string `json:"history"`
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() Snapshot {
	status := g.Status()
	snap := Snapshot{
		FEN:        g.FEN(),
		SideToMove: g.current.ToMove.String(),
		Status:     status.String(),
		Result:     status.Result(),
		Terminal:   status.IsTerminal(),
		InCheck:    IsInCheck(&g.current, g.current.ToMove),
		LegalMoves: []string{},
		History:    g.Moves(),
	}
	if snap.History == nil {
		snap.History = []string{}
	}
	if !snap.Terminal {
		for _, m := range g.LegalMoves() {
			snap.LegalMoves = append(snap.LegalMoves, m.UCI())
		}
	}
	return snap
}
