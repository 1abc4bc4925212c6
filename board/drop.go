package board

import (
	"fmt"

	"termtris/piece"
)

// HardDrop moves p to its resting level, writes its cells into the grid and
// clears any rows it completed. It returns the number of rows cleared.
//
// Panics if the resting position puts any cell outside the grid; callers
// check CanDrop first.
func (b *Board) HardDrop(p *piece.Piece) int {
	p.Drop(b.heights[:])

	cells := p.Cells()
	for _, c := range cells {
		if c.Level < 0 || c.Level >= Height || c.Col < 0 || c.Col >= Width {
			panic(fmt.Sprintf("board: %s piece rests at (%d, %d), outside the grid", p.Kind(), p.X(), p.Y()))
		}
	}
	for _, c := range cells {
		b.grid[RowIndex(c.Level)][c.Col] = p.Kind()
	}

	for col, row := range p.UpperEdge() {
		if row < 0 {
			continue
		}
		x := p.X() + col
		if h := p.Y() - row + 1; h > b.heights[x] {
			b.heights[x] = h
		}
	}

	return b.clearLines(p.Levels())
}

// clearLines removes every full row among levels (ascending) and shifts the
// rows above each one down into its place. Rows below a cleared row are left
// alone.
func (b *Board) clearLines(levels []int) int {
	cleared := 0
	for _, level := range levels {
		// Rows cleared below have already pulled this one down.
		l := level - cleared
		if !b.full(l) {
			continue
		}
		for above := l; above < Height-1; above++ {
			b.grid[RowIndex(above)] = b.grid[RowIndex(above+1)]
		}
		b.grid[RowIndex(Height-1)] = [Width]piece.Kind{}
		cleared++
	}
	if cleared == 0 {
		return 0
	}

	for col := range b.heights {
		h := b.heights[col] - cleared
		// A column whose top block sat in a cleared row may now expose a gap.
		for h > 0 && b.grid[RowIndex(h-1)][col] == piece.None {
			h--
		}
		b.heights[col] = h
	}
	return cleared
}

func (b *Board) full(level int) bool {
	for _, k := range b.grid[RowIndex(level)] {
		if k == piece.None {
			return false
		}
	}
	return true
}
