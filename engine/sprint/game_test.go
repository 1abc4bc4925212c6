package sprint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"termtris/board"
	"termtris/engine"
	"termtris/piece"
	"termtris/types"
)

func newGame(t *testing.T, cfg engine.GameConfig) *Game {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 7
	}
	g, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newGame(t, engine.DefaultConfig())
	require.NoError(t, g.Start())
	return g
}

// force replaces the active piece with a fresh one of kind k.
func force(g *Game, k piece.Kind) {
	g.active = piece.New(k)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(engine.GameConfig{BagSize: 0, QueueSize: 5}, nil)
	assert.Error(t, err)

	_, err = New(engine.GameConfig{BagSize: 7, QueueSize: 0}, nil)
	assert.Error(t, err)

	_, err = New(engine.GameConfig{BagSize: 7, QueueSize: 5, LineGoal: -1}, nil)
	assert.Error(t, err)
}

func TestCommandsBeforeStart(t *testing.T) {
	g := newGame(t, engine.DefaultConfig())

	for in := engine.HardDrop; in <= engine.Hold; in++ {
		assert.ErrorIs(t, g.Execute(in), engine.ErrNotStarted, in.String())
	}
	assert.ErrorIs(t, g.NextFrame([]engine.Input{engine.MoveLeft}), engine.ErrNotStarted)
	assert.Nil(t, g.Active())
	assert.Equal(t, types.PhaseWaiting, g.State().Phase)
}

func TestStart(t *testing.T) {
	g := startedGame(t)

	require.NotNil(t, g.Active())
	assert.Equal(t, piece.SpawnPosition, g.Active().Position())
	assert.Len(t, g.Queue(), 5)
	assert.Equal(t, piece.None, g.HoldPiece())
	assert.Equal(t, types.PhasePlaying, g.State().Phase)

	assert.ErrorIs(t, g.Start(), engine.ErrAlreadyStarted)
}

func TestEndGameIsTerminal(t *testing.T) {
	g := startedGame(t)
	g.EndGame()

	assert.True(t, g.GameOver())
	assert.Nil(t, g.Active())
	assert.ErrorIs(t, g.Start(), engine.ErrGameOver)
	assert.ErrorIs(t, g.NextFrame(nil), engine.ErrGameOver)
	for in := engine.HardDrop; in <= engine.Hold; in++ {
		assert.ErrorIs(t, g.Execute(in), engine.ErrGameOver, in.String())
	}

	s := g.State()
	assert.True(t, s.Finished())
	assert.Equal(t, "ended", s.Outcome)
}

func TestHardDropPromotesQueue(t *testing.T) {
	g := startedGame(t)

	for i := 0; i < 6; i++ {
		next := g.Queue()[0]
		rest := g.Queue()[1:]

		require.NoError(t, g.HardDrop())
		require.Equal(t, next, g.Active().Kind())
		require.Len(t, g.Queue(), 5)
		if diff := cmp.Diff(rest, g.Queue()[:4]); diff != "" {
			t.Fatalf("queue did not shift (-want +got):\n%s", diff)
		}
	}
	assert.Equal(t, 6, g.State().Placed)
}

func TestHold(t *testing.T) {
	g := startedGame(t)
	first := g.Active().Kind()
	next := g.Queue()[0]

	require.NoError(t, g.Hold())
	assert.Equal(t, first, g.HoldPiece())
	assert.Equal(t, next, g.Active().Kind())
	assert.Len(t, g.Queue(), 5)

	active, hold, queue := g.Active().Kind(), g.HoldPiece(), g.Queue()
	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, g.Hold(), engine.ErrInvalidHold)
		assert.Equal(t, active, g.Active().Kind())
		assert.Equal(t, hold, g.HoldPiece())
		assert.Equal(t, queue, g.Queue())
	}

	require.NoError(t, g.HardDrop())
	current := g.Active().Kind()
	require.NoError(t, g.Hold())
	assert.Equal(t, current, g.HoldPiece())
	assert.Equal(t, first, g.Active().Kind())
	assert.Equal(t, piece.SpawnPosition, g.Active().Position())
	assert.Equal(t, piece.North, g.Active().Orientation())
}

func TestMoves(t *testing.T) {
	g := startedGame(t)
	force(g, piece.T)

	require.NoError(t, g.MoveLeft())
	assert.Equal(t, 2, g.Active().X())
	require.NoError(t, g.MoveRight())
	assert.Equal(t, 3, g.Active().X())

	require.NoError(t, g.SnapLeft())
	assert.Equal(t, 0, g.Active().X())
	assert.ErrorIs(t, g.MoveLeft(), engine.ErrInvalidLeftMove)
	assert.ErrorIs(t, g.SnapLeft(), engine.ErrInvalidLeftMove)
	assert.Equal(t, 0, g.Active().X())

	require.NoError(t, g.SnapRight())
	assert.Equal(t, 7, g.Active().X())
	assert.ErrorIs(t, g.MoveRight(), engine.ErrInvalidRightMove)
}

func TestRotationBlockedByWall(t *testing.T) {
	g := startedGame(t)
	force(g, piece.I)

	require.NoError(t, g.RotateCCW()) // West: column offset 1
	require.NoError(t, g.SnapLeft())
	assert.Equal(t, -1, g.Active().X())

	// North would put the bar in column -1.
	assert.ErrorIs(t, g.RotateCW(), engine.ErrInvalidCWRotation)
	assert.Equal(t, piece.West, g.Active().Orientation())
	// South would too.
	assert.ErrorIs(t, g.RotateCCW(), engine.ErrInvalidCCWRotation)
	assert.Equal(t, piece.West, g.Active().Orientation())

	require.NoError(t, g.MoveRight())
	require.NoError(t, g.RotateCW())
	assert.Equal(t, piece.North, g.Active().Orientation())
}

func TestRotateFourTimes(t *testing.T) {
	g := startedGame(t)
	force(g, piece.L)
	mask := g.Active().Mask()

	for i := 0; i < 4; i++ {
		require.NoError(t, g.RotateCW())
	}
	assert.Equal(t, mask, g.Active().Mask())
	for i := 0; i < 4; i++ {
		require.NoError(t, g.RotateCCW())
	}
	assert.Equal(t, mask, g.Active().Mask())
}

func TestNextFrameSkipsRejectedInputs(t *testing.T) {
	g := startedGame(t)
	force(g, piece.T)

	err := g.NextFrame([]engine.Input{engine.SnapLeft, engine.MoveLeft, engine.MoveRight})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Active().X())
	assert.Equal(t, uint64(1), g.State().Frame)
}

// clearOneLine drops I, I and O so that the floor row fills up.
func clearOneLine(t *testing.T, g *Game) {
	t.Helper()
	force(g, piece.I)
	require.NoError(t, g.SnapLeft())
	require.NoError(t, g.HardDrop())

	force(g, piece.I)
	require.NoError(t, g.MoveRight())
	require.NoError(t, g.HardDrop())

	force(g, piece.O)
	require.NoError(t, g.SnapRight())
	require.NoError(t, g.HardDrop())
}

func TestLineClearCounts(t *testing.T) {
	g := startedGame(t)
	clearOneLine(t, g)

	s := g.State()
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, 3, s.Placed)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}, g.Board().Heights())
	assert.False(t, s.Finished())
}

func TestLineGoalFinishesGame(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.LineGoal = 1
	g := newGame(t, cfg)
	require.NoError(t, g.Start())

	clearOneLine(t, g)

	assert.True(t, g.GameOver())
	assert.Equal(t, "cleared 1 lines in 0 frames", g.State().Outcome)
}

func TestStackingToTheTopEndsGame(t *testing.T) {
	g := startedGame(t)

	for i := 0; i < 100 && !g.GameOver(); i++ {
		err := g.HardDrop()
		if err != nil {
			require.ErrorIs(t, err, engine.ErrGameOver)
		}
	}

	require.True(t, g.GameOver())
	assert.Contains(t, []string{"block out", "lock out"}, g.State().Outcome)
	assert.ErrorIs(t, g.HardDrop(), engine.ErrGameOver)
	for _, h := range g.Board().Heights() {
		assert.LessOrEqual(t, h, board.Height)
	}
}

func TestState(t *testing.T) {
	g := startedGame(t)
	force(g, piece.O)

	s := g.State()
	assert.Equal(t, board.Height, s.Height())
	assert.Equal(t, board.Width, s.Width())
	assert.Equal(t, piece.O, s.Active.Kind)
	assert.ElementsMatch(t, []types.BoardPos{
		{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 4, Y: 2}, {X: 5, Y: 2},
	}, s.Active.Cells)
	assert.ElementsMatch(t, []types.BoardPos{
		{X: 4, Y: 22}, {X: 5, Y: 22}, {X: 4, Y: 23}, {X: 5, Y: 23},
	}, s.Ghost)
	assert.Len(t, s.Queue, 5)

	total := 0
	for _, n := range s.Counts {
		total += n
	}
	assert.Equal(t, 1, total, "only the first spawn is counted; force bypasses spawn")
}

func TestSameSeedSameQueue(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Seed = 99
	a, b := newGame(t, cfg), newGame(t, cfg)
	require.NoError(t, a.Start())
	require.NoError(t, b.Start())

	for i := 0; i < 8; i++ {
		require.Equal(t, a.Active().Kind(), b.Active().Kind())
		require.Equal(t, a.Queue(), b.Queue())
		require.NoError(t, a.HardDrop())
		require.NoError(t, b.HardDrop())
	}
}
