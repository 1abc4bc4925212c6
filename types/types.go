// Package types contains shared data structures for termtris.
package types

import "termtris/piece"

// Game phases as reported in BoardState.Phase.
const (
	PhaseWaiting  = "waiting"
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a read-only snapshot of a game for presenters.
// Board is indexed as Board[row][col] with row 0 at the top of the hidden
// spawn area; piece.None marks an empty cell.
type BoardState struct {
	Frame   uint64         `json:"frame"`
	Phase   string         `json:"phase"`
	Outcome string         `json:"outcome"`
	Board   [][]piece.Kind `json:"board"`

	Active ActivePiece  `json:"active"`
	Ghost  []BoardPos   `json:"ghost"`
	Hold   piece.Kind   `json:"hold"`
	Queue  []piece.Kind `json:"queue"`

	Lines  int            `json:"lines"`
	Placed int            `json:"placed"`
	Counts map[string]int `json:"counts"` // spawns per kind name
}

// ActivePiece describes the falling piece. Kind is piece.None when there is
// none.
type ActivePiece struct {
	Kind        piece.Kind        `json:"kind"`
	Orientation piece.Orientation `json:"orientation"`
	Cells       []BoardPos        `json:"cells"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// BoardPos represents a position on the board, in the same row/col space as
// BoardState.Board.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewBoardState creates a snapshot of an empty board of the given size.
func NewBoardState(width, height int) *BoardState {
	board := make([][]piece.Kind, height)
	for i := range board {
		board[i] = make([]piece.Kind, width)
	}
	return &BoardState{
		Phase:  PhaseWaiting,
		Board:  board,
		Counts: map[string]int{},
	}
}
