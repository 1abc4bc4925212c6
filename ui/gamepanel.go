package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/piece"
	"termtris/types"
)

// GameInfoPanel displays hold, the preview queue and counters alongside the
// playfield.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	cfg        *config.Config
	lineGoal   int
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(c *config.Config) *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
		cfg: c,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetLineGoal sets the goal shown next to the line count. 0 hides it.
func (p *GameInfoPanel) SetLineGoal(goal int) {
	p.lineGoal = goal
	p.refresh()
}

func (p *GameInfoPanel) SetConfig(c *config.Config) {
	p.cfg = c
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}
	s := p.boardState

	var text strings.Builder

	text.WriteString("[white::b]Hold[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	text.WriteString(p.miniPiece(s.Hold))

	text.WriteString("\n[white::b]Next[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, k := range s.Queue {
		text.WriteString(p.miniPiece(k))
	}

	text.WriteString("\n[white::b]Stats[-:-:-]\n")
	text.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if p.lineGoal > 0 {
		fmt.Fprintf(&text, "[white]Lines:[-:-:-]  %d / %d\n", s.Lines, p.lineGoal)
	} else {
		fmt.Fprintf(&text, "[white]Lines:[-:-:-]  %d\n", s.Lines)
	}
	fmt.Fprintf(&text, "[white]Pieces:[-:-:-] %d\n", s.Placed)
	fmt.Fprintf(&text, "[white]Frame:[-:-:-]  %d\n", s.Frame)

	var counts []string
	for _, k := range piece.Kinds {
		if n := s.Counts[k.String()]; n > 0 {
			counts = append(counts, fmt.Sprintf("%s%s[-]:%d", p.colorTag(k), k, n))
		}
	}
	if len(counts) > 0 {
		text.WriteString(strings.Join(counts, " "))
		text.WriteString("\n")
	}

	if s.Finished() {
		fmt.Fprintf(&text, "\n[yellow::b]%s[-:-:-]\n", tview.Escape(s.Outcome))
	}

	p.box.SetText(text.String())
}

// miniPiece renders the north orientation of k in two text rows, or a blank
// line for piece.None.
func (p *GameInfoPanel) miniPiece(k piece.Kind) string {
	if k == piece.None {
		return "  [dimgray]-[-]\n\n"
	}
	var rows [4][4]bool
	for _, idx := range k.Mask(piece.North) {
		rows[idx/4][idx%4] = true
	}

	block := string(p.cfg.Theme.Symbols.Block)
	var sb strings.Builder
	lines := 0
	for _, row := range rows {
		if row == [4]bool{} {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(p.colorTag(k))
		for _, on := range row {
			if on {
				sb.WriteString(block + block)
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("[-]\n")
		lines++
	}
	for ; lines < 2; lines++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *GameInfoPanel) colorTag(k piece.Kind) string {
	colors := p.cfg.Theme.Colors
	index := map[piece.Kind]int{
		piece.I: colors.I,
		piece.O: colors.O,
		piece.T: colors.T,
		piece.S: colors.S,
		piece.Z: colors.Z,
		piece.J: colors.J,
		piece.L: colors.L,
	}[k]
	hex := tcell.PaletteColor(index).Hex()
	if hex < 0 {
		return "[white]"
	}
	return fmt.Sprintf("[#%06x]", hex)
}

// CreateGameLayout creates the main game layout with playfield and side panel.
func CreateGameLayout(field *PlayfieldUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, field, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with playfield, info
// panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, field *PlayfieldUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel(field.cfg)
	infoPanel.lineGoal = field.lineGoal
	field.infoPanel = infoPanel
	if field.BoardState != nil {
		infoPanel.SetBoardState(field.BoardState)
	}

	fieldRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	fieldRow.AddItem(nil, 0, 1, false)
	fieldRow.AddItem(field.Box, fieldWidth(field), 0, true)
	fieldRow.AddItem(nil, 2, 0, false)
	fieldRow.AddItem(infoPanel.Box(), 26, 0, false)
	fieldRow.AddItem(nil, 0, 1, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(fieldRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered playfield.
func BuildFocusLayout(gameFrame *tview.Flex, field *PlayfieldUI) {
	gameFrame.Clear()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(field.Box, fieldWidth(field), 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, fieldHeight(field), 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}

func fieldWidth(field *PlayfieldUI) int {
	return field.BoardState.Width()*2 + 2
}

func fieldHeight(field *PlayfieldUI) int {
	return field.BoardState.Height() - field.firstRow() + 1
}
