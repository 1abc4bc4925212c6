package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtris/piece"
)

// fill places blocks of kind J directly, bypassing the drop rules, and keeps
// the height cache in step.
func fill(b *Board, level int, cols ...int) {
	for _, c := range cols {
		b.grid[RowIndex(level)][c] = piece.J
		if level+1 > b.heights[c] {
			b.heights[c] = level + 1
		}
	}
}

func span(from, to int) []int {
	cols := make([]int, 0, to-from+1)
	for c := from; c <= to; c++ {
		cols = append(cols, c)
	}
	return cols
}

// spawnAt creates a piece of kind k, applies the rotations and slides it to
// column x.
func spawnAt(b *Board, k piece.Kind, x int, rotate ...func(*piece.Piece)) *piece.Piece {
	p := piece.New(k)
	for _, r := range rotate {
		r(p)
	}
	for p.X() > x && p.MoveLeft(b) {
	}
	for p.X() < x && p.MoveRight(b) {
	}
	return p
}

// trueHeights recomputes every column height by scanning the grid.
func trueHeights(b *Board) []int {
	h := make([]int, Width)
	for c := 0; c < Width; c++ {
		for l := Height - 1; l >= 0; l-- {
			if b.Occupied(l, c) {
				h[c] = l + 1
				break
			}
		}
	}
	return h
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New()
	assert.Equal(t, make([]int, Width), b.Heights())
	for l := 0; l < Height; l++ {
		for c := 0; c < Width; c++ {
			assert.False(t, b.Occupied(l, c))
		}
	}
}

func TestOccupiedOutsideGrid(t *testing.T) {
	b := New()
	assert.True(t, b.Occupied(-1, 0))
	assert.True(t, b.Occupied(Height, 0))
	assert.True(t, b.Occupied(0, -1))
	assert.True(t, b.Occupied(0, Width))
}

func TestCellPanicsOutsideGrid(t *testing.T) {
	b := New()
	assert.Panics(t, func() { b.Cell(Height, 0) })
	assert.Panics(t, func() { b.Cell(0, -1) })
	assert.NotPanics(t, func() { b.Cell(0, 0) })
}

func TestHardDropFlatIColumnHeights(t *testing.T) {
	b := New()
	want := make([]int, Width)

	for i := 0; i < 20; i++ {
		cleared := b.HardDrop(piece.New(piece.I))
		require.Zero(t, cleared)

		for c := 3; c <= 6; c++ {
			want[c]++
		}
		if diff := cmp.Diff(want, b.Heights()); diff != "" {
			t.Fatalf("heights after %d flat I drops (-want +got):\n%s", i+1, diff)
		}
	}
	assert.Equal(t, trueHeights(b), b.Heights())
}

func TestHardDropWritesKindAtRestingLevel(t *testing.T) {
	b := New()
	p := piece.New(piece.T)
	b.HardDrop(p)

	assert.Equal(t, 1, p.Y())
	assert.Equal(t, piece.T, b.Cell(1, 4))
	assert.Equal(t, piece.T, b.Cell(0, 3))
	assert.Equal(t, piece.T, b.Cell(0, 4))
	assert.Equal(t, piece.T, b.Cell(0, 5))
	assert.Equal(t, []int{0, 0, 0, 1, 2, 1, 0, 0, 0, 0}, b.Heights())

	rows := b.Rows()
	assert.Equal(t, piece.T, rows[Height-2][4])
	assert.Equal(t, piece.None, rows[Height-2][3])
}

func TestHardDropClearsCompletedRow(t *testing.T) {
	b := New()

	require.Zero(t, b.HardDrop(spawnAt(b, piece.I, 0)))
	require.Zero(t, b.HardDrop(spawnAt(b, piece.I, 4)))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0}, b.Heights())

	// O covers columns 8 and 9 on levels 0 and 1, completing level 0.
	cleared := b.HardDrop(spawnAt(b, piece.O, 7))
	assert.Equal(t, 1, cleared)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}, b.Heights())
	for c := 0; c < 8; c++ {
		assert.False(t, b.Occupied(0, c), "col %d", c)
	}
	assert.Equal(t, piece.O, b.Cell(0, 8))
	assert.Equal(t, piece.O, b.Cell(0, 9))
	assert.False(t, b.Occupied(1, 8))
}

func TestClearShiftsRowsAboveAndKeepsRowsBelow(t *testing.T) {
	b := New()
	fill(b, 0, span(1, 9)...)
	fill(b, 1, span(0, 5)...)
	fill(b, 2, 0)
	below := b.Rows()[RowIndex(0)]

	cleared := b.HardDrop(spawnAt(b, piece.I, 6))
	require.Equal(t, 1, cleared)

	if diff := cmp.Diff(below, b.Rows()[RowIndex(0)]); diff != "" {
		t.Errorf("row below the clear changed (-want +got):\n%s", diff)
	}
	assert.True(t, b.Occupied(1, 0), "level 2 should have fallen to level 1")
	for c := 1; c < Width; c++ {
		assert.False(t, b.Occupied(1, c), "col %d", c)
	}
	assert.Equal(t, []int{2, 1, 1, 1, 1, 1, 1, 1, 1, 1}, b.Heights())
	assert.Equal(t, trueHeights(b), b.Heights())
}

func TestClearSettlesHeightOverHole(t *testing.T) {
	b := New()
	fill(b, 0, span(1, 9)...)
	fill(b, 1, span(0, 5)...)

	require.Equal(t, 1, b.HardDrop(spawnAt(b, piece.I, 6)))

	// Column 0's only block was in the cleared row, above a hole.
	assert.Equal(t, []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1}, b.Heights())
	assert.Equal(t, trueHeights(b), b.Heights())
}

func TestHardDropClearsFourRows(t *testing.T) {
	b := New()
	for l := 0; l < 4; l++ {
		fill(b, l, span(0, 8)...)
	}

	p := spawnAt(b, piece.I, 7, (*piece.Piece).RotateCW)
	require.Equal(t, 4, b.HardDrop(p))

	assert.Equal(t, make([]int, Width), b.Heights())
	assert.Equal(t, New().Rows(), b.Rows())
}

func TestHardDropOnlyScansPieceRows(t *testing.T) {
	b := New()
	// A full row the piece never touches stays put.
	fill(b, 0, span(0, 9)...)

	b.HardDrop(piece.New(piece.O))
	assert.True(t, b.full(0))
	assert.Equal(t, []int{1, 1, 1, 1, 3, 3, 1, 1, 1, 1}, b.Heights())
}

func TestHardDropOutsideGridPanics(t *testing.T) {
	b := New()
	for l := 0; l < Height; l++ {
		fill(b, l, 5)
	}

	p := piece.New(piece.I)
	assert.False(t, b.CanDrop(p))
	assert.Panics(t, func() { b.HardDrop(p) })
}

func TestFits(t *testing.T) {
	b := New()
	p := piece.New(piece.T)
	assert.True(t, b.Fits(p))

	fill(b, 21, 4)
	assert.False(t, b.Fits(p))
}

func TestRestingYAndCanDrop(t *testing.T) {
	b := New()
	fill(b, 0, 3)
	fill(b, 1, 3)

	p := piece.New(piece.I)
	assert.Equal(t, 3, b.RestingY(p))
	assert.True(t, b.CanDrop(p))
	assert.Equal(t, piece.SpawnPosition, p.Position(), "CanDrop must not move the piece")
}

func TestString(t *testing.T) {
	b := New()
	b.HardDrop(piece.New(piece.I))

	lines := b.String()
	assert.Contains(t, lines, "|   ■■■■   |\n+----------+\n")
}
