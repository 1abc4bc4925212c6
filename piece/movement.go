package piece

// Occupancy answers whether a board cell is filled. Cells outside the board
// must report true.
type Occupancy interface {
	Occupied(level, col int) bool
}

// MoveLeft shifts the piece one column left. It returns false and leaves the
// piece untouched if any cell on its left edge is blocked by a placed block
// or the wall.
func (p *Piece) MoveLeft(grid Occupancy) bool {
	for row, col := range p.shape.left {
		if col < 0 {
			continue
		}
		if grid.Occupied(p.position.Y-row, p.position.X+col-1) {
			return false
		}
	}
	p.position.MoveLeft()
	return true
}

// MoveRight shifts the piece one column right, with the same all-or-nothing
// rule as MoveLeft.
func (p *Piece) MoveRight(grid Occupancy) bool {
	for row, col := range p.shape.right {
		if col < 0 {
			continue
		}
		if grid.Occupied(p.position.Y-row, p.position.X+col+1) {
			return false
		}
	}
	p.position.MoveRight()
	return true
}

// DropRow returns the level the piece's box top would rest at if dropped
// straight down onto columns of the given heights. Each column touched by the
// bottom edge needs its lowest cell at or above that column's height; the
// piece stops on whichever column demands the highest box.
func (p *Piece) DropRow(heights []int) int {
	rest := 0
	for col, row := range p.shape.lower {
		if row < 0 {
			continue
		}
		if y := heights[p.position.X+col] + row; y > rest {
			rest = y
		}
	}
	return rest
}

// Drop moves the piece to its resting level and returns it.
func (p *Piece) Drop(heights []int) int {
	y := p.DropRow(heights)
	p.position.SetY(y)
	return y
}
