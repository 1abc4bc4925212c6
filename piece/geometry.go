// Package piece describes tetromino kinds, their orientations and the 4x4 cell
// masks they occupy, plus movement and resting arithmetic for a single piece.
package piece

import "fmt"

// Kind identifies one of the seven tetromino shapes. None marks an empty cell.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every playable kind in a fixed order.
var Kinds = [7]Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	switch k {
	case None:
		return "-"
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind named by s ("I", "O", ...).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown piece kind %q", s)
}

// Orientation is one of the four rotational states of a piece.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// DefaultOrientation is the orientation every piece spawns in.
const DefaultOrientation = North

// CW returns the orientation clockwise of o.
func (o Orientation) CW() Orientation {
	return (o + 1) % 4
}

// CCW returns the orientation counterclockwise of o.
func (o Orientation) CCW() Orientation {
	return (o + 3) % 4
}

// Opposite returns the orientation 180 degrees from o.
func (o Orientation) Opposite() Orientation {
	return o.CW().CW()
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Cell indices within the 4x4 bounding box, row-major:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
var masks = [8][4][4]uint8{
	I: {
		North: {4, 5, 6, 7},
		East:  {2, 6, 10, 14},
		South: {8, 9, 10, 11},
		West:  {1, 5, 9, 13},
	},
	O: {
		North: {1, 2, 5, 6},
		East:  {1, 2, 5, 6},
		South: {1, 2, 5, 6},
		West:  {1, 2, 5, 6},
	},
	T: {
		North: {1, 4, 5, 6},
		East:  {1, 5, 6, 9},
		South: {4, 5, 6, 9},
		West:  {1, 4, 5, 9},
	},
	S: {
		North: {1, 2, 4, 5},
		East:  {1, 5, 6, 10},
		South: {5, 6, 8, 9},
		West:  {0, 4, 5, 9},
	},
	Z: {
		North: {0, 1, 5, 6},
		East:  {2, 5, 6, 9},
		South: {4, 5, 9, 10},
		West:  {1, 4, 5, 8},
	},
	J: {
		North: {0, 4, 5, 6},
		East:  {1, 2, 5, 9},
		South: {4, 5, 6, 10},
		West:  {1, 5, 8, 9},
	},
	L: {
		North: {2, 4, 5, 6},
		East:  {1, 5, 9, 10},
		South: {4, 5, 6, 8},
		West:  {0, 1, 5, 9},
	},
}

// shape is the mask of one (kind, orientation) pair together with its edges.
// Edge entries are offsets inside the bounding box, -1 where the row or column
// is empty.
type shape struct {
	mask  [4]uint8
	left  [4]int // per row: column offset of the leftmost cell
	right [4]int // per row: column offset of the rightmost cell
	lower [4]int // per column: row offset of the bottommost cell
	upper [4]int // per column: row offset of the topmost cell
}

var shapes [8][4]shape

func init() {
	for _, k := range Kinds {
		for o := North; o <= West; o++ {
			shapes[k][o] = newShape(masks[k][o])
		}
	}
}

func newShape(mask [4]uint8) shape {
	s := shape{mask: mask}
	for i := range 4 {
		s.left[i], s.right[i], s.lower[i], s.upper[i] = -1, -1, -1, -1
	}

	// Ascending keeps the last (right/bottom) cell of each group.
	for _, idx := range mask {
		row, col := int(idx/4), int(idx%4)
		s.right[row] = col
		s.lower[col] = row
	}
	// Descending keeps the first (left/top) cell.
	for i := len(mask) - 1; i >= 0; i-- {
		row, col := int(mask[i]/4), int(mask[i]%4)
		s.left[row] = col
		s.upper[col] = row
	}
	return s
}

// Mask returns the four occupied cell indices of k in orientation o, ascending.
// The result for None is the zero array.
func (k Kind) Mask(o Orientation) [4]uint8 {
	return shapes[k][o%4].mask
}
