package engine

import "fmt"

// Input is a discrete player intent consumed once per frame.
type Input int

const (
	HardDrop Input = iota
	MoveLeft
	MoveRight
	SnapLeft
	SnapRight
	RotateCW
	RotateCCW
	Rotate180
	Hold
)

var inputNames = [...]string{
	HardDrop:  "hard_drop",
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	SnapLeft:  "snap_left",
	SnapRight: "snap_right",
	RotateCW:  "rotate_cw",
	RotateCCW: "rotate_ccw",
	Rotate180: "rotate_180",
	Hold:      "hold",
}

func (i Input) String() string {
	if i >= 0 && int(i) < len(inputNames) {
		return inputNames[i]
	}
	return fmt.Sprintf("Input(%d)", int(i))
}

// Apply dispatches input to the matching command of c.
func Apply(c Controllable, input Input) error {
	switch input {
	case HardDrop:
		return c.HardDrop()
	case MoveLeft:
		return c.MoveLeft()
	case MoveRight:
		return c.MoveRight()
	case SnapLeft:
		return c.SnapLeft()
	case SnapRight:
		return c.SnapRight()
	case RotateCW:
		return c.RotateCW()
	case RotateCCW:
		return c.RotateCCW()
	case Rotate180:
		return c.Rotate180()
	case Hold:
		return c.Hold()
	}
	return fmt.Errorf("unknown input %d", int(input))
}
