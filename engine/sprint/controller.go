package sprint

import (
	"fmt"

	"go.uber.org/zap"

	"termtris/engine"
	"termtris/piece"
)

func (g *Game) MoveLeft() error {
	if err := g.checkActive(); err != nil {
		return err
	}
	if !g.active.MoveLeft(g.board) {
		return engine.ErrInvalidLeftMove
	}
	return nil
}

func (g *Game) MoveRight() error {
	if err := g.checkActive(); err != nil {
		return err
	}
	if !g.active.MoveRight(g.board) {
		return engine.ErrInvalidRightMove
	}
	return nil
}

func (g *Game) SnapLeft() error {
	if err := g.MoveLeft(); err != nil {
		return err
	}
	for g.active.MoveLeft(g.board) {
	}
	return nil
}

func (g *Game) SnapRight() error {
	if err := g.MoveRight(); err != nil {
		return err
	}
	for g.active.MoveRight(g.board) {
	}
	return nil
}

func (g *Game) RotateCW() error {
	return g.rotate((*piece.Piece).RotateCW, (*piece.Piece).RotateCCW, engine.ErrInvalidCWRotation)
}

func (g *Game) RotateCCW() error {
	return g.rotate((*piece.Piece).RotateCCW, (*piece.Piece).RotateCW, engine.ErrInvalidCCWRotation)
}

func (g *Game) Rotate180() error {
	return g.rotate((*piece.Piece).Rotate180, (*piece.Piece).Rotate180, engine.ErrInvalid180Rotation)
}

// rotate turns the active piece in place and undoes the turn if the result
// overlaps the stack or leaves the board. There are no kicks.
func (g *Game) rotate(turn, undo func(*piece.Piece), blocked error) error {
	if err := g.checkActive(); err != nil {
		return err
	}
	turn(g.active)
	if !g.board.Fits(g.active) {
		undo(g.active)
		return blocked
	}
	return nil
}

// Hold parks the active piece's kind in the hold slot. The previously held
// kind, or the next queued one if the slot was empty, becomes active at the
// spawn position.
func (g *Game) Hold() error {
	if err := g.checkActive(); err != nil {
		return err
	}
	if !g.canHold {
		return engine.ErrInvalidHold
	}

	held := g.hold
	g.hold = g.active.Kind()
	g.canHold = false
	g.log.Debug("hold", zap.Stringer("held", g.hold), zap.Stringer("released", held))

	if held == piece.None {
		g.loadNextPiece()
	} else {
		g.spawn(held)
	}
	return nil
}

// HardDrop places the active piece, clears lines, re-enables hold and brings
// in the next piece. A piece that would rest above the top of the board ends
// the game without being placed.
func (g *Game) HardDrop() error {
	if err := g.checkActive(); err != nil {
		return err
	}

	p := g.active
	if !g.board.CanDrop(p) {
		g.finish("lock out")
		return engine.ErrGameOver
	}

	cleared := g.board.HardDrop(p)
	g.active = nil
	g.canHold = true
	g.placed++
	g.lines += cleared

	g.log.Debug("piece placed",
		zap.Stringer("kind", p.Kind()),
		zap.Stringer("orientation", p.Orientation()),
		zap.Int("x", p.X()),
		zap.Int("y", p.Y()),
		zap.Int("cleared", cleared),
	)

	if g.config.LineGoal > 0 && g.lines >= g.config.LineGoal {
		g.finish(fmt.Sprintf("cleared %d lines in %d frames", g.lines, g.frame))
		return nil
	}

	g.loadNextPiece()
	return nil
}
