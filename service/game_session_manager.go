package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
)

var _ i.GameSessionManager = &GameSessionManager{}

// session is one player's run. Its mutex serialises moves so that a move is
// fully processed before the next one is looked at.
type session struct {
	controller *game.LevelController
	recorder   *game.Recorder
	lastActive time.Time
	sync.Mutex
}

// Config holds the dependencies of a GameSessionManager.
type Config struct {
	MazeSize    int
	MaxLevel    int
	MazeFactory func() game.MazeFactory // called once per session so sessions never share a random source
	Logger      logger.Logger
	Now         func() time.Time
}

// GameSessionManager keeps every running game in memory, keyed by session ID.
type GameSessionManager struct {
	sessions    map[uuid.UUID]*session
	mazeSize    int
	maxLevel    int
	mazeFactory func() game.MazeFactory
	logger      logger.Logger
	now         func() time.Time
	sync.RWMutex
}

// NewGameSessionManager validates c and returns an empty manager.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, game.ErrNoMazeFactory
	}
	if c.Logger == nil {
		c.Logger = logger.Nop{}
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	// fail fast on a size or level count the controller would reject
	if _, err := game.NewLevelController(game.Config{Size: c.MazeSize, MaxLevel: c.MaxLevel, MazeFactory: c.MazeFactory()}); err != nil {
		return nil, err
	}

	return &GameSessionManager{
		sessions:    make(map[uuid.UUID]*session),
		mazeSize:    c.MazeSize,
		maxLevel:    c.MaxLevel,
		mazeFactory: c.MazeFactory,
		logger:      c.Logger,
		now:         c.Now,
	}, nil
}

// NewSession implements i.GameSessionManager.
func (g *GameSessionManager) NewSession() (uuid.UUID, game.Snapshot, error) {
	recorder := &game.Recorder{}
	controller, err := game.NewLevelController(game.Config{
		Size:        g.mazeSize,
		MaxLevel:    g.maxLevel,
		MazeFactory: g.mazeFactory(),
		Hooks:       recorder.Hooks(),
		Logger:      g.logger,
	})
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating level controller: %s", err))
		return uuid.Nil, game.Snapshot{}, err
	}

	if err := controller.Start(); err != nil {
		g.logger.Error(fmt.Sprintf("starting new game: %s", err))
		return uuid.Nil, game.Snapshot{}, err
	}

	s := &session{controller: controller, recorder: recorder, lastActive: g.now()}
	id := g.saveSession(s)
	g.logger.Info(fmt.Sprintf("started new game session: %s", id))
	return id, controller.Snapshot(), nil
}

// Move implements i.GameSessionManager.
func (g *GameSessionManager) Move(id uuid.UUID, d game.Direction) (game.MoveResult, error) {
	s, err := g.session(id)
	if err != nil {
		return game.MoveResult{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.lastActive = g.now()

	outcome, err := s.controller.AttemptMove(d)
	result := game.MoveResult{
		Outcome:  outcome,
		Events:   s.recorder.Drain(),
		Snapshot: s.controller.Snapshot(),
	}
	if err != nil {
		g.logger.Error(fmt.Sprintf("processing move %s for session %s: %s", d, id, err))
		return result, err
	}

	if outcome != game.Moved && outcome != game.Ignored {
		g.logger.Info(fmt.Sprintf("session %s: %s (%s)", id, outcome, result.Snapshot.Label))
	}
	return result, nil
}

// Snapshot implements i.GameSessionManager.
func (g *GameSessionManager) Snapshot(id uuid.UUID) (game.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.controller.Snapshot(), nil
}

// Restart implements i.GameSessionManager.
func (g *GameSessionManager) Restart(id uuid.UUID) (game.Snapshot, error) {
	s, err := g.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.lastActive = g.now()
	if err := s.controller.Start(); err != nil {
		g.logger.Error(fmt.Sprintf("restarting session %s: %s", id, err))
		return game.Snapshot{}, err
	}
	s.recorder.Drain()

	g.logger.Info(fmt.Sprintf("restarted game session: %s", id))
	return s.controller.Snapshot(), nil
}

// End implements i.GameSessionManager.
func (g *GameSessionManager) End(id uuid.UUID) error {
	g.Lock()
	defer g.Unlock()
	if _, ok := g.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(g.sessions, id)
	g.logger.Info(fmt.Sprintf("ended game session: %s", id))
	return nil
}

// Count returns the number of live sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

// Sweep drops sessions that have been idle for longer than idle and returns how many were dropped.
func (g *GameSessionManager) Sweep(idle time.Duration) int {
	cutoff := g.now().Add(-idle)

	g.Lock()
	defer g.Unlock()

	dropped := 0
	for id, s := range g.sessions {
		s.Lock()
		stale := s.lastActive.Before(cutoff)
		s.Unlock()
		if stale {
			delete(g.sessions, id)
			dropped++
		}
	}

	if dropped > 0 {
		g.logger.Info(fmt.Sprintf("swept %d idle game sessions", dropped))
	}
	return dropped
}

// RunSweeper calls Sweep every interval until ctx is done.
func (g *GameSessionManager) RunSweeper(ctx context.Context, every, idle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Sweep(idle)
		}
	}
}

func (g *GameSessionManager) session(id uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (g *GameSessionManager) saveSession(s *session) uuid.UUID {
	g.Lock()
	defer g.Unlock()

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	g.sessions[sessionID] = s
	return sessionID
}
