// termtris is a terminal falling-block puzzle game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"termtris/config"
	"termtris/engine"
	"termtris/engine/sprint"
	"termtris/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBagSize    = flag.Int("bag", 0, "Pieces per bag fill (default from config)")
	flagQueueSize  = flag.Int("queue", 0, "Number of preview pieces (1-6)")
	flagLineGoal   = flag.Int("goal", -1, "Lines to clear to finish, 0 for endless")
	flagSeed       = flag.Uint64("seed", 0, "Randomizer seed, 0 picks one")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (playfield only)")
	flagDebug      = flag.Bool("debug", false, "Write debug events to the log file")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var playfield *ui.PlayfieldUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *zap.Logger
var lastGameCfg engine.GameConfig

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtris %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err = newLogger(*flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %s\n", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	quickStart := *flagQuickStart || *flagBagSize > 0 || *flagQueueSize > 0 || *flagLineGoal >= 0 || *flagSeed > 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▦ termtris ")
	rootPage.SetBorderColor(ui.MenuColors.Border)
	rootPage.SetTitleColor(ui.MenuColors.Title)

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Controls ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	playfield = ui.NewPlayfield(cfg, gameHint, logger)

	gameFrame = ui.CreateGameLayout(playfield, gameHint)

	playfield.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if in, ok := ui.KeyInput(event); ok {
			playfield.Input(in)
			return nil
		}
		if event.Key() != tcell.KeyRune {
			return event
		}
		switch event.Rune() {
		case 'q':
			playfield.Close()
			rootPage.SwitchToPage("setup")
			return nil
		case 'r':
			playfield.Close()
			startGame(lastGameCfg)
			return nil
		case 'f':
			if playfield.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, playfield)
			} else {
				ui.RebuildNormalLayout(gameFrame, playfield, gameHint)
			}
			return nil
		}
		return event
	})
	playfield.Box.SetFocusFunc(func() {
		gameHint.SetBorderColor(ui.MenuColors.BorderFocus)
	})
	playfield.Box.SetBlurFunc(func() {
		gameHint.SetBorderColor(ui.MenuColors.Border)
	})

	setupUI := ui.NewGameSetup(
		cfg.Game,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
	)

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		startGame(buildGameConfigFromFlags())
		if *flagFocus {
			playfield.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, playfield)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("application stopped", zap.Error(err))
		panic(err)
	}
}

// newLogger builds a JSON logger writing to the state directory.
func newLogger(debug bool) (*zap.Logger, error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.Sampling = nil
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	lastGameCfg = gameCfg

	game, err := sprint.New(gameCfg, logger)
	if err == nil {
		err = playfield.Connect(game, gameCfg.LineGoal)
	}
	if err != nil {
		logger.Warn("failed to start game", zap.Error(err))
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}

	cfg.Game = config.GameDefaults{
		BagSize:   gameCfg.BagSize,
		QueueSize: gameCfg.QueueSize,
		LineGoal:  gameCfg.LineGoal,
	}
	if err := cfg.Validate(); err == nil {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		}
	}

	rootPage.SwitchToPage("gameview")
	app.SetFocus(playfield.Box)
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := engine.GameConfig{
		BagSize:   cfg.Game.BagSize,
		QueueSize: cfg.Game.QueueSize,
		LineGoal:  cfg.Game.LineGoal,
		Seed:      *flagSeed,
	}

	if *flagBagSize > 0 {
		gameCfg.BagSize = *flagBagSize
	}
	if *flagQueueSize >= 1 && *flagQueueSize <= config.MaxQueueSize {
		gameCfg.QueueSize = *flagQueueSize
	}
	if *flagLineGoal >= 0 {
		gameCfg.LineGoal = *flagLineGoal
	}

	return gameCfg
}
