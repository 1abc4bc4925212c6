package ui

import (
	"github.com/gdamore/tcell/v2"

	"termtris/engine"
)

var keyInputs = map[tcell.Key]engine.Input{
	tcell.KeyLeft:  engine.MoveLeft,
	tcell.KeyRight: engine.MoveRight,
	tcell.KeyUp:    engine.RotateCW,
	tcell.KeyEnter: engine.HardDrop,
}

var runeInputs = map[rune]engine.Input{
	' ': engine.HardDrop,
	'h': engine.MoveLeft,
	'l': engine.MoveRight,
	'H': engine.SnapLeft,
	'L': engine.SnapRight,
	'x': engine.RotateCW,
	'z': engine.RotateCCW,
	'a': engine.Rotate180,
	'c': engine.Hold,
}

// KeyInput maps a key event to a game input. ok is false for keys that are
// not game controls.
func KeyInput(event *tcell.EventKey) (in engine.Input, ok bool) {
	if event.Key() == tcell.KeyRune {
		in, ok = runeInputs[event.Rune()]
		return in, ok
	}
	in, ok = keyInputs[event.Key()]
	return in, ok
}
