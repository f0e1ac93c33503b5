package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// errTooManyGames is returned by Create when the session limit is reached.
var errTooManyGames = errors.New("too many live games")

// jsonWriter is the part of a websocket connection used for broadcasts.
type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// Session is one live game. All access to the game goes through the
// session's mutex, so requests and sockets on the same game are serialised.
// Socket writes happen outside the mutex, in each client's writeLoop.
type Session struct {
	ID string

	mu    sync.Mutex
	game  *engine.Game
	conns map[*client]struct{}
}

// GameState is the JSON view of a session.
type GameState struct {
	ID string `json:"id"`
	engine.Snapshot
}

// MoveView describes one legal move.
type MoveView struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
}

func (s *Session) stateLocked() GameState {
	return GameState{ID: s.ID, Snapshot: s.game.Snapshot()}
}

// State returns the current state of the game.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// update runs fn on the game and, if it succeeds, broadcasts the new state
// to every connected socket.
func (s *Session) update(fn func(g *engine.Game) error) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.game); err != nil {
		return GameState{}, err
	}
	state := s.stateLocked()
	s.broadcastLocked(message(msgGameState, state))
	return state, nil
}

// PlayUCI plays a move given in UCI notation.
func (s *Session) PlayUCI(text string) (GameState, error) {
	return s.update(func(g *engine.Game) error { return g.PlayUCI(text) })
}

// PlaySAN plays a move given in SAN.
func (s *Session) PlaySAN(text string) (GameState, error) {
	return s.update(func(g *engine.Game) error { return g.PlaySAN(text) })
}

// Undo takes back the last move.
func (s *Session) Undo() (GameState, error) {
	return s.update(func(g *engine.Game) error { return g.Undo() })
}

// Reset returns the game to its starting position.
func (s *Session) Reset() GameState {
	state, _ := s.update(func(g *engine.Game) error {
		g.Reset()
		return nil
	})
	return state
}

// LegalMoves lists legal moves, limited to the piece on from when from is
// a valid square.
func (s *Session) LegalMoves(from chess.Square) []MoveView {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.game.Position()
	var moves []chess.Move
	if from.Valid() {
		moves = engine.LegalMovesFrom(&pos, from)
	} else {
		moves = engine.LegalMoves(&pos)
	}
	views := make([]MoveView, 0, len(moves))
	for _, m := range moves {
		views = append(views, MoveView{UCI: m.UCI(), SAN: engine.SAN(&pos, m)})
	}
	return views
}

// addConn registers a socket and queues the current state as its first
// message, so no broadcast can overtake it.
func (s *Session) addConn(conn jsonWriter) *client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := newClient(conn)
	c.enqueue(message(msgGameState, s.stateLocked()))
	s.conns[c] = struct{}{}
	return c
}

func (s *Session) removeConn(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked(c)
}

// reply queues a message for one socket. It returns false if the socket is
// no longer on the session.
func (s *Session) reply(c *client, msg Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conns[c]; !ok {
		return false
	}
	if !c.enqueue(msg) {
		s.dropLocked(c)
		return false
	}
	return true
}

// broadcastLocked queues msg for every socket, dropping those whose queue
// is full.
func (s *Session) broadcastLocked(msg Message) {
	for c := range s.conns {
		if !c.enqueue(msg) {
			s.dropLocked(c)
		}
	}
}

func (s *Session) dropLocked(c *client) {
	delete(s.conns, c)
	c.close()
}

// Manager is the registry of live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	maxGames int
}

// NewManager creates an empty registry. maxGames <= 0 means no limit.
func NewManager(maxGames int) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		maxGames: maxGames,
	}
}

// Create starts a new session from fen, or from the initial position when
// fen is empty.
func (m *Manager) Create(fen string) (*Session, error) {
	game := engine.NewGame()
	if fen != "" {
		var err error
		if game, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.maxGames > 0 && len(m.sessions) >= m.maxGames {
		return nil, errTooManyGames
	}
	s := &Session{
		ID:    uuid.New().String(),
		game:  game,
		conns: make(map[*client]struct{}),
	}
	m.sessions[s.ID] = s
	return s, nil
}

// Get looks up a session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, chesserrors.Wrapf(chesserrors.ErrGameNotFound, "game %q", id)
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return chesserrors.Wrapf(chesserrors.ErrGameNotFound, "game %q", id)
	}
	delete(m.sessions, id)
	return nil
}

// IDs returns the ids of all live sessions, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.sessions)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
