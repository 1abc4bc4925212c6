// Package sprint implements engine.Game: a single-player game on one board
// fed by a shuffle bag, optionally finishing after a number of cleared lines.
package sprint

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"

	"termtris/bag"
	"termtris/board"
	"termtris/engine"
	"termtris/piece"
	"termtris/types"
)

type phase int

const (
	notStarted phase = iota
	active
	over
)

var _ engine.Game = (*Game)(nil)

// Game is a sprint game. It is not safe for concurrent use.
type Game struct {
	id     uuid.UUID
	config engine.GameConfig
	log    *zap.Logger

	board  *board.Board
	bag    *bag.Bag
	active *piece.Piece
	hold   piece.Kind
	queue  []piece.Kind

	phase   phase
	canHold bool
	outcome string

	frame  uint64
	lines  int
	placed int
	spawns *intmap.Map[piece.Kind, int]
}

// New creates a game that has not started yet.
func New(cfg engine.GameConfig, logger *zap.Logger) (*Game, error) {
	if cfg.QueueSize < 1 {
		return nil, fmt.Errorf("queue size must be at least 1, got %d", cfg.QueueSize)
	}
	if cfg.LineGoal < 0 {
		return nil, fmt.Errorf("line goal must not be negative, got %d", cfg.LineGoal)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	b, err := bag.New(cfg.BagSize, rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))
	if err != nil {
		return nil, fmt.Errorf("failed to create bag: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()

	return &Game{
		id:      id,
		config:  cfg,
		log:     logger.With(zap.String("game_id", id.String())),
		board:   board.New(),
		bag:     b,
		queue:   make([]piece.Kind, 0, cfg.QueueSize),
		canHold: true,
		spawns:  intmap.New[piece.Kind, int](len(piece.Kinds)),
	}, nil
}

// ID identifies the game in logs.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Config returns the configuration the game was created with, including the
// seed actually used.
func (g *Game) Config() engine.GameConfig {
	return g.config
}

// Board returns the game's board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Active returns the falling piece, or nil before start and after game over.
func (g *Game) Active() *piece.Piece {
	return g.active
}

// HoldPiece returns the held kind, piece.None when the slot is empty.
func (g *Game) HoldPiece() piece.Kind {
	return g.hold
}

// Queue returns the upcoming kinds, next first.
func (g *Game) Queue() []piece.Kind {
	q := make([]piece.Kind, len(g.queue))
	copy(q, g.queue)
	return q
}

// GameOver returns true once the game has ended.
func (g *Game) GameOver() bool {
	return g.phase == over
}

// Start fills the queue and brings in the first piece.
func (g *Game) Start() error {
	switch g.phase {
	case over:
		return engine.ErrGameOver
	case active:
		return engine.ErrAlreadyStarted
	}

	g.phase = active
	g.log.Info("game started",
		zap.Int("bag_size", g.config.BagSize),
		zap.Int("queue_size", g.config.QueueSize),
		zap.Int("line_goal", g.config.LineGoal),
		zap.Uint64("seed", g.config.Seed),
	)

	g.fillQueue()
	g.loadNextPiece()
	return nil
}

// NextFrame applies inputs in order. Blocked inputs are logged and skipped;
// if one of them ends the game the rest are dropped.
func (g *Game) NextFrame(inputs []engine.Input) error {
	if err := g.checkActive(); err != nil {
		return err
	}

	for _, in := range inputs {
		if err := g.Execute(in); err != nil {
			g.log.Debug("input rejected", zap.Stringer("input", in), zap.Error(err))
		}
		if g.phase == over {
			break
		}
	}

	g.frame++
	return nil
}

// Execute applies a single input.
func (g *Game) Execute(input engine.Input) error {
	return engine.Apply(g, input)
}

// EndGame finishes the game.
func (g *Game) EndGame() {
	g.finish("ended")
}

func (g *Game) finish(outcome string) {
	if g.phase == over {
		return
	}
	g.phase = over
	g.active = nil
	g.outcome = outcome
	g.log.Info("game over",
		zap.String("outcome", outcome),
		zap.Uint64("frame", g.frame),
		zap.Int("lines", g.lines),
		zap.Int("placed", g.placed),
	)
}

func (g *Game) checkActive() error {
	switch g.phase {
	case notStarted:
		return engine.ErrNotStarted
	case over:
		return engine.ErrGameOver
	}
	return nil
}

func (g *Game) fillQueue() {
	for len(g.queue) < g.config.QueueSize {
		g.queue = append(g.queue, g.bag.Draw())
	}
}

// loadNextPiece promotes the queue head and tops the queue up again.
func (g *Game) loadNextPiece() {
	next := g.queue[0]
	g.queue = append(g.queue[:0], g.queue[1:]...)
	g.fillQueue()
	g.spawn(next)
}

// spawn makes a fresh piece of kind k active. A spawn overlapping the stack
// ends the game.
func (g *Game) spawn(k piece.Kind) {
	p := piece.New(k)
	if !g.board.Fits(p) {
		g.finish("block out")
		return
	}
	g.active = p
	n, _ := g.spawns.Get(k)
	g.spawns.Put(k, n+1)
}

// State returns a snapshot for presenters.
func (g *Game) State() *types.BoardState {
	s := types.NewBoardState(board.Width, board.Height)
	s.Frame = g.frame
	s.Outcome = g.outcome
	s.Hold = g.hold
	s.Queue = g.Queue()
	s.Lines = g.lines
	s.Placed = g.placed

	switch g.phase {
	case notStarted:
		s.Phase = types.PhaseWaiting
	case active:
		s.Phase = types.PhasePlaying
	case over:
		s.Phase = types.PhaseFinished
	}

	s.Board = g.board.Rows()

	for _, k := range piece.Kinds {
		if n, ok := g.spawns.Get(k); ok {
			s.Counts[k.String()] = n
		}
	}

	if g.active != nil {
		s.Active = types.ActivePiece{
			Kind:        g.active.Kind(),
			Orientation: g.active.Orientation(),
			Cells:       boardPositions(g.active),
		}
		if g.board.CanDrop(g.active) {
			ghost := g.active.Clone()
			ghost.Drop(g.board.Heights())
			s.Ghost = boardPositions(ghost)
		}
	}
	return s
}

func boardPositions(p *piece.Piece) []types.BoardPos {
	cells := p.Cells()
	pos := make([]types.BoardPos, 0, len(cells))
	for _, c := range cells {
		pos = append(pos, types.BoardPos{X: c.Col, Y: board.RowIndex(c.Level)})
	}
	return pos
}
