// Package engine defines the interface for falling-block game controllers.
package engine

import (
	"errors"

	"termtris/types"
)

// Rule violations. Every command that returns one of these leaves the game
// exactly as it was.
var (
	ErrInvalidLeftMove    = errors.New("move left blocked")
	ErrInvalidRightMove   = errors.New("move right blocked")
	ErrInvalidCWRotation  = errors.New("clockwise rotation blocked")
	ErrInvalidCCWRotation = errors.New("counterclockwise rotation blocked")
	ErrInvalid180Rotation = errors.New("180 rotation blocked")
	ErrInvalidHold        = errors.New("hold already used for this piece")
	ErrNotStarted         = errors.New("game not started")
	ErrAlreadyStarted     = errors.New("game already started")
	ErrGameOver           = errors.New("game over")
)

// Controllable is the command surface of a running game.
type Controllable interface {
	MoveLeft() error
	MoveRight() error

	// SnapLeft and SnapRight slide the piece as far as it will go.
	SnapLeft() error
	SnapRight() error

	RotateCW() error
	RotateCCW() error
	Rotate180() error

	// Hold swaps the active piece with the held one. Allowed once per piece.
	Hold() error

	// HardDrop places the active piece at its resting position and brings in
	// the next one.
	HardDrop() error
}

// Game defines a complete game: lifecycle, commands and queries.
type Game interface {
	Controllable

	// Start fills the preview queue and brings in the first piece.
	Start() error

	// NextFrame applies inputs in order and advances the frame counter.
	// Blocked inputs are skipped; only lifecycle errors are returned.
	NextFrame(inputs []Input) error

	// Execute applies a single input.
	Execute(input Input) error

	// EndGame finishes the game. It cannot be restarted.
	EndGame()

	// State returns a snapshot of the board, pieces and counters.
	State() *types.BoardState

	// GameOver returns true once the game has ended.
	GameOver() bool
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BagSize   int    // Pieces per bag fill, rounded up to a multiple of 7
	QueueSize int    // Number of upcoming pieces shown
	LineGoal  int    // Lines to clear to finish; 0 plays until top-out
	Seed      uint64 // Randomizer seed; 0 picks one
}

// DefaultConfig returns the standard 7-bag with five previews.
func DefaultConfig() GameConfig {
	return GameConfig{
		BagSize:   7,
		QueueSize: 5,
	}
}
