package piece

import "strings"

// Cell is an absolute board cell: a column and a level above the floor.
type Cell struct {
	Col   int
	Level int
}

// Piece is a tetromino of a given kind, orientation and position.
type Piece struct {
	kind        Kind
	orientation Orientation
	position    Position
	shape       *shape
}

// New creates a piece of the given kind at the spawn position, facing north.
func New(kind Kind) *Piece {
	return &Piece{
		kind:        kind,
		orientation: DefaultOrientation,
		position:    SpawnPosition,
		shape:       &shapes[kind][DefaultOrientation],
	}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Orientation() Orientation {
	return p.orientation
}

func (p *Piece) Position() Position {
	return p.position
}

func (p *Piece) X() int {
	return p.position.X
}

func (p *Piece) Y() int {
	return p.position.Y
}

// Mask returns the occupied cell indices of the piece's bounding box.
func (p *Piece) Mask() [4]uint8 {
	return p.shape.mask
}

// Cells returns the absolute board cells covered by the piece.
func (p *Piece) Cells() [4]Cell {
	var cells [4]Cell
	for i, idx := range p.shape.mask {
		cells[i] = Cell{
			Col:   p.position.X + int(idx%4),
			Level: p.position.Y - int(idx/4),
		}
	}
	return cells
}

// Levels returns the distinct levels the piece covers, lowest first.
func (p *Piece) Levels() []int {
	levels := make([]int, 0, 4)
	for row := 3; row >= 0; row-- {
		if p.shape.left[row] >= 0 {
			levels = append(levels, p.position.Y-row)
		}
	}
	return levels
}

// UpperEdge returns, for every relative column, the row offset of the
// piece's topmost cell in that column, or -1.
func (p *Piece) UpperEdge() [4]int {
	return p.shape.upper
}

// LowerEdge returns, for every relative column, the row offset of the
// piece's bottommost cell in that column, or -1.
func (p *Piece) LowerEdge() [4]int {
	return p.shape.lower
}

// LeftEdge returns, for every relative row, the column offset of the
// piece's leftmost cell in that row, or -1.
func (p *Piece) LeftEdge() [4]int {
	return p.shape.left
}

// RightEdge returns, for every relative row, the column offset of the
// piece's rightmost cell in that row, or -1.
func (p *Piece) RightEdge() [4]int {
	return p.shape.right
}

// RotateCW turns the piece clockwise in place.
func (p *Piece) RotateCW() {
	p.setOrientation(p.orientation.CW())
}

// RotateCCW turns the piece counterclockwise in place.
func (p *Piece) RotateCCW() {
	p.setOrientation(p.orientation.CCW())
}

// Rotate180 turns the piece halfway around in place.
func (p *Piece) Rotate180() {
	p.setOrientation(p.orientation.Opposite())
}

func (p *Piece) setOrientation(o Orientation) {
	p.orientation = o
	p.shape = &shapes[p.kind][o]
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// String draws the piece's bounding box, one line per row.
func (p *Piece) String() string {
	var sb strings.Builder
	next := 0
	for i := range uint8(16) {
		if i%4 == 0 && i > 0 {
			sb.WriteByte('\n')
		}
		if next < 4 && p.shape.mask[next] == i {
			sb.WriteRune('■')
			next++
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
