package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris/config"
	"termtris/engine"
)

// LineGoals are the sprint lengths offered by the setup form. 0 is endless.
var LineGoals = []int{0, 20, 40, 100}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	bagSize   int
	queueSize int
	lineGoal  int
	seed      uint64
}

// NewGameSetup creates a new game setup form prefilled from defaults.
func NewGameSetup(defaults config.GameDefaults, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		bagSize:   defaults.BagSize,
		queueSize: defaults.QueueSize,
		lineGoal:  defaults.LineGoal,
	}

	queueSizes := make([]string, config.MaxQueueSize)
	for i := range queueSizes {
		queueSizes[i] = strconv.Itoa(i + 1)
	}
	queueIndex := setup.queueSize - 1
	if queueIndex < 0 || queueIndex >= len(queueSizes) {
		queueIndex = len(queueSizes) - 1
	}

	goals := make([]string, len(LineGoals))
	goalIndex := 0
	for i, g := range LineGoals {
		goals[i] = strconv.Itoa(g) + " lines"
		if g == 0 {
			goals[i] = "Endless"
		}
		if g == setup.lineGoal {
			goalIndex = i
		}
	}

	form := tview.NewForm()

	form.AddInputField("Bag Size", strconv.Itoa(setup.bagSize), 8, tview.InputFieldInteger, func(text string) {
		if val, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			setup.bagSize = val
		}
	})

	form.AddDropDown("Preview", queueSizes, queueIndex, func(option string, index int) {
		setup.queueSize = index + 1
	})

	form.AddDropDown("Goal", goals, goalIndex, func(option string, index int) {
		setup.lineGoal = LineGoals[index]
	})

	form.AddInputField("Seed", "", 20, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		setup.seed, _ = strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration currently entered in the form.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		BagSize:   s.bagSize,
		QueueSize: s.queueSize,
		LineGoal:  s.lineGoal,
		Seed:      s.seed,
	}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
