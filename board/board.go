// Package board holds the playfield grid, its column-height cache, and the
// hard-drop and line-clear rules.
package board

import (
	"fmt"
	"strings"

	"termtris/piece"
)

const (
	Width         = 10
	Height        = 24
	VisibleHeight = 20
	HiddenRows    = Height - VisibleHeight
)

// Board is a Width x Height grid of placed blocks. Rows are stored top first;
// callers address them by level (distance from the floor) and RowIndex is the
// only place the two are converted.
type Board struct {
	grid    [Height][Width]piece.Kind
	heights [Width]int
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// RowIndex converts a level (0 = floor row) into a grid row (0 = top row).
func RowIndex(level int) int {
	return Height - 1 - level
}

// Occupied reports whether the cell at level and col holds a block. Cells
// outside the grid count as occupied.
func (b *Board) Occupied(level, col int) bool {
	if level < 0 || level >= Height || col < 0 || col >= Width {
		return true
	}
	return b.grid[RowIndex(level)][col] != piece.None
}

// Cell returns the kind that filled the cell at level and col.
//
// Panics if the cell is outside the grid.
func (b *Board) Cell(level, col int) piece.Kind {
	if level < 0 || level >= Height || col < 0 || col >= Width {
		panic(fmt.Sprintf("board: cell (level %d, col %d) outside %dx%d grid", level, col, Width, Height))
	}
	return b.grid[RowIndex(level)][col]
}

// Heights returns a copy of the column-height cache. A column's height is one
// above its topmost block, 0 when the column is empty.
func (b *Board) Heights() []int {
	h := make([]int, Width)
	copy(h, b.heights[:])
	return h
}

// Rows returns the grid row-major, top row first.
func (b *Board) Rows() [][]piece.Kind {
	rows := make([][]piece.Kind, Height)
	for r := range rows {
		rows[r] = make([]piece.Kind, Width)
		copy(rows[r], b.grid[r][:])
	}
	return rows
}

// Fits reports whether every cell of p lies inside the grid and is empty.
func (b *Board) Fits(p *piece.Piece) bool {
	for _, c := range p.Cells() {
		if b.Occupied(c.Level, c.Col) {
			return false
		}
	}
	return true
}

// RestingY returns the level p's box top would come to rest at.
func (b *Board) RestingY(p *piece.Piece) int {
	return p.DropRow(b.heights[:])
}

// CanDrop reports whether p, dropped from where it is, would come to rest
// entirely inside the grid.
func (b *Board) CanDrop(p *piece.Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= Width {
			return false
		}
	}
	rested := p.Clone()
	rested.Drop(b.heights[:])
	for _, c := range rested.Cells() {
		if c.Level < 0 || c.Level >= Height {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Height; r++ {
		left, right := ' ', ' '
		if r >= HiddenRows {
			left, right = '|', '|'
		}
		sb.WriteRune(left)
		for c := 0; c < Width; c++ {
			if b.grid[r][c] != piece.None {
				sb.WriteRune('■')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(right)
		sb.WriteByte('\n')
	}
	sb.WriteString("+----------+\n")
	return sb.String()
}
