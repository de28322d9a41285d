package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumgrid/quantumgrid/internal/game/bot"
	"github.com/quantumgrid/quantumgrid/internal/game/core"
	"github.com/quantumgrid/quantumgrid/internal/game/events"
)

func twoHumanConfig() Config {
	return Config{GridSize: 6, TurnBudget: 18}
}

func botConfig(d bot.Difficulty) Config {
	return Config{
		GridSize:      6,
		TurnBudget:    18,
		VsBot:         true,
		BotDifficulty: d,
		HumanColor:    core.PlayerBlue,
	}
}

func newTestEngine(t *testing.T, cfg Config, seed int64) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, rand.New(rand.NewSource(seed)), nil)
	require.NoError(t, err)
	return e
}

// firstSuperposition returns a cell that is neither entangled nor collapsed.
func firstSuperposition(b *core.Board) *core.Cell {
	for i := range b.Cells {
		if b.Cells[i].State.Kind() == core.KindSuperposition {
			return &b.Cells[i]
		}
	}
	return nil
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := NewEngine(Config{GridSize: 4, TurnBudget: 10}, nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidGridSize)

	_, err = NewEngine(Config{GridSize: 6, TurnBudget: 0}, nil, nil)
	assert.Error(t, err)

	_, err = NewEngine(Config{GridSize: 6, TurnBudget: 10, VsBot: true}, nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidPlayer)
}

func TestReset_InitialState(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 1)

	assert.Equal(t, PhasePlacement, e.Phase())
	assert.Equal(t, core.PlayerBlue, e.CurrentPlayer())
	assert.Equal(t, 18, e.TurnsRemaining())

	blue, red := e.Scores()
	assert.Zero(t, blue)
	assert.Zero(t, red)

	// max(2, 6/2) mutually entangled pairs.
	entangled := 0
	for i := range e.board.Cells {
		if e.board.Cells[i].State.IsEntangled() {
			entangled++
		}
	}
	assert.Equal(t, 2*PairCount(6), entangled)
}

func TestReset_BotModeHumanOpens(t *testing.T) {
	for _, color := range []core.Player{core.PlayerBlue, core.PlayerRed} {
		cfg := botConfig(bot.Easy)
		cfg.HumanColor = color
		e := newTestEngine(t, cfg, 3)

		// The human side always opens; the bot never moves at reset.
		assert.Equal(t, color, e.CurrentPlayer())
		assert.Equal(t, 18, e.TurnsRemaining())
		assert.False(t, e.IsBotThinking())
	}
}

func TestApplyMove_MajorityCollapseIsDeterministic(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)
	cell := firstSuperposition(e.board)
	require.NotNil(t, cell)
	row, col := cell.Row, cell.Col

	// Blue, Red, Blue on the same cell: collapses at total 3 with a 2-1
	// split, no coin flip involved.
	require.True(t, e.ApplyMove(row, col))
	require.True(t, e.ApplyMove(row, col))
	require.True(t, e.ApplyMove(row, col))

	assert.True(t, cell.State.IsCollapsed())
	assert.Equal(t, core.PlayerBlue, cell.Owner())

	blue, red := e.Scores()
	assert.Equal(t, 1, blue)
	assert.Equal(t, 0, red)
	assert.Equal(t, 15, e.TurnsRemaining())
}

func TestApplyMove_RejectedOnOpponentCell(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)
	cell := firstSuperposition(e.board)
	cell.State = core.Collapsed(core.PlayerRed)

	applied := e.ApplyMove(cell.Row, cell.Col)

	assert.False(t, applied)
	assert.Zero(t, cell.TotalInfluence())
	assert.Equal(t, 18, e.TurnsRemaining())
	assert.Equal(t, core.PlayerBlue, e.CurrentPlayer())
}

func TestApplyMove_OwnCollapsedCellIsWastedButLegal(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)
	cell := firstSuperposition(e.board)
	cell.State = core.Collapsed(core.PlayerBlue)

	require.True(t, e.ApplyMove(cell.Row, cell.Col))

	assert.Equal(t, core.PlayerBlue, cell.Owner())
	assert.Equal(t, 1, cell.InfluenceOf(core.PlayerBlue))
	assert.Equal(t, 17, e.TurnsRemaining())
	assert.Equal(t, core.PlayerRed, e.CurrentPlayer())
}

func TestApplyMove_OutOfBounds(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)
	assert.False(t, e.ApplyMove(-1, 0))
	assert.False(t, e.ApplyMove(0, 6))
	assert.Equal(t, 18, e.TurnsRemaining())
}

func TestApplyMove_EntanglementPropagation(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)

	// Pin down a known pair so the scenario is exact.
	e.board = core.NewBoard(6)
	a := e.board.At(2, 3)
	p := e.board.At(4, 1)
	a.State = core.Entangled(core.NewCoordinate(4, 1))
	p.State = core.Entangled(core.NewCoordinate(2, 3))

	require.True(t, e.ApplyMove(2, 3))

	// The partner picks up blue influence without ever being tapped.
	assert.Equal(t, 1, p.InfluenceOf(core.PlayerBlue))
	assert.Equal(t, 1, a.InfluenceOf(core.PlayerBlue))
}

func TestApplyMove_PartnerCollapsesIndependently(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)

	e.board = core.NewBoard(6)
	a := e.board.At(0, 0)
	p := e.board.At(3, 3)
	a.State = core.Entangled(core.NewCoordinate(3, 3))
	p.State = core.Entangled(core.NewCoordinate(0, 0))
	p.AddInfluence(core.PlayerBlue, 2)

	// Blue taps (0,0): the propagated point pushes the partner to 3 and
	// collapses it; the tapped cell is demoted to superposition with its
	// influence intact.
	require.True(t, e.ApplyMove(0, 0))

	assert.True(t, p.State.IsCollapsed())
	assert.Equal(t, core.PlayerBlue, p.Owner())
	assert.Equal(t, core.KindSuperposition, a.State.Kind())
	assert.Equal(t, 1, a.InfluenceOf(core.PlayerBlue))
}

func TestApplyMove_CollapseBeforePropagation(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 5)

	e.board = core.NewBoard(6)
	a := e.board.At(1, 1)
	p := e.board.At(5, 5)
	a.State = core.Entangled(core.NewCoordinate(5, 5))
	p.State = core.Entangled(core.NewCoordinate(1, 1))
	a.AddInfluence(core.PlayerBlue, 2)

	// The tap collapses the cell, so the bond is severed before any
	// propagation: the partner gains nothing.
	require.True(t, e.ApplyMove(1, 1))

	assert.True(t, a.State.IsCollapsed())
	assert.Equal(t, core.PlayerBlue, a.Owner())
	assert.Equal(t, core.KindSuperposition, p.State.Kind())
	assert.Zero(t, p.TotalInfluence())
}

func TestFullGame_TerminatesWithAllCellsCollapsed(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 11)

	moves := 0
	for e.Phase() == PhasePlacement {
		require.Less(t, moves, 18, "game should end within the turn budget")
		opponent := e.CurrentPlayer().Opposite()
		applied := false
		for i := range e.board.Cells {
			c := &e.board.Cells[i]
			if c.Owner() == opponent {
				continue
			}
			require.True(t, e.ApplyMove(c.Row, c.Col))
			applied = true
			break
		}
		require.True(t, applied)
		moves++
	}

	assert.Equal(t, 18, moves)
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.True(t, e.board.AllCollapsed())

	// Every cell has exactly one owner at game over.
	base := e.board.CollapsedCount(core.PlayerBlue) + e.board.CollapsedCount(core.PlayerRed)
	assert.Equal(t, 36, base)
}

func TestStartObservationPhase_Early(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 7)
	require.True(t, e.ApplyMove(0, 0))
	require.True(t, e.ApplyMove(1, 1))

	e.StartObservationPhase()

	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.True(t, e.board.AllCollapsed())

	blue, red := e.Scores()
	assert.Positive(t, blue+red)

	// A second call is a no-op.
	e.StartObservationPhase()
	assert.Equal(t, PhaseGameOver, e.Phase())
}

func TestApplyMove_IgnoredAfterGameOver(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 7)
	e.StartObservationPhase()
	require.Equal(t, PhaseGameOver, e.Phase())

	assert.False(t, e.ApplyMove(0, 0))
}

func TestResult_TieRegardlessOfMode(t *testing.T) {
	for _, cfg := range []Config{twoHumanConfig(), botConfig(bot.Medium)} {
		e := newTestEngine(t, cfg, 1)
		e.phase = PhaseGameOver
		e.blueScore, e.redScore = 14, 14

		r := e.Result()
		assert.True(t, r.Tied)
		assert.False(t, r.Decided)
	}
}

func TestResult_BotModeReportsWinLoss(t *testing.T) {
	e := newTestEngine(t, botConfig(bot.Hard), 1)
	e.phase = PhaseGameOver
	e.blueScore, e.redScore = 20, 16

	r := e.Result()
	assert.False(t, r.Tied)
	assert.True(t, r.Decided)
	assert.True(t, r.HumanWon)

	e.blueScore, e.redScore = 10, 16
	r = e.Result()
	assert.True(t, r.Decided)
	assert.False(t, r.HumanWon)
}

func TestResult_TwoHumanNeverReportsWinner(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 1)
	e.phase = PhaseGameOver
	e.blueScore, e.redScore = 20, 16

	r := e.Result()
	assert.False(t, r.Tied)
	assert.False(t, r.Decided)
}

func TestResult_ZeroBeforeGameOver(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 1)
	assert.Equal(t, GameResult{}, e.Result())
}

func TestBotMode_BotRepliesSynchronously(t *testing.T) {
	e := newTestEngine(t, botConfig(bot.Expert), 21)
	cell := firstSuperposition(e.board)

	require.True(t, e.ApplyMove(cell.Row, cell.Col))

	// With zero think delay the bot has already answered.
	assert.Equal(t, core.PlayerBlue, e.CurrentPlayer())
	assert.Equal(t, 16, e.TurnsRemaining())
	assert.False(t, e.IsBotThinking())
	assert.Len(t, e.history, 1)
}

func TestBotMode_HumanBlockedOutOfTurn(t *testing.T) {
	e := newTestEngine(t, botConfig(bot.Easy), 21)
	e.current = e.botPlayer

	assert.False(t, e.ApplyMove(0, 0))
	assert.Equal(t, 18, e.TurnsRemaining())
}

func TestBotMode_ThinkDelayBlocksHumanAndResetAbandons(t *testing.T) {
	cfg := botConfig(bot.Easy)
	cfg.ThinkDelay = time.Hour
	e := newTestEngine(t, cfg, 21)
	cell := firstSuperposition(e.board)

	require.True(t, e.ApplyMove(cell.Row, cell.Col))
	assert.True(t, e.IsBotThinking())
	assert.Equal(t, 17, e.TurnsRemaining())

	// Human taps are refused while the bot move is pending.
	assert.False(t, e.ApplyMove(0, 0))

	// Reset abandons the pending computation wholesale.
	e.Reset()
	assert.False(t, e.IsBotThinking())
	assert.Equal(t, 18, e.TurnsRemaining())
	assert.Empty(t, e.history)

	// The stale timer firing later must be a no-op.
	e.mu.Lock()
	e.botMoveLocked(e.botGen - 1)
	e.mu.Unlock()
	assert.Equal(t, 18, e.TurnsRemaining())
}

func TestBotMode_FullGameAgainstEachDifficulty(t *testing.T) {
	for _, d := range []bot.Difficulty{bot.Easy, bot.Medium, bot.Hard, bot.Expert} {
		t.Run(d.String(), func(t *testing.T) {
			e := newTestEngine(t, botConfig(d), int64(40)+int64(d))

			for e.Phase() == PhasePlacement {
				opponent := e.CurrentPlayer().Opposite()
				applied := false
				for i := range e.board.Cells {
					c := &e.board.Cells[i]
					if c.Owner() == opponent {
						continue
					}
					if e.ApplyMove(c.Row, c.Col) {
						applied = true
						break
					}
				}
				require.True(t, applied)
			}

			assert.Equal(t, PhaseGameOver, e.Phase())
			assert.True(t, e.board.AllCollapsed())
		})
	}
}

func TestReset_RebuildsWholesale(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 13)
	require.True(t, e.ApplyMove(0, 0))
	require.True(t, e.ApplyMove(0, 0))
	require.True(t, e.ApplyMove(0, 0))

	e.Reset()

	assert.Equal(t, PhasePlacement, e.Phase())
	assert.Equal(t, 18, e.TurnsRemaining())
	blue, red := e.Scores()
	assert.Zero(t, blue+red)
	for i := range e.board.Cells {
		assert.Zero(t, e.board.Cells[i].TotalInfluence())
	}
}

func TestEngine_EventStream(t *testing.T) {
	bus := events.NewEventBus()
	var types []string
	for _, et := range []string{
		events.TypeMoveApplied, events.TypeCellCollapsed,
		events.TypePhaseChanged, events.TypeGameEnded,
	} {
		eventType := et
		bus.SubscribeFunc(eventType, func(events.Event) { types = append(types, eventType) })
	}

	e, err := NewEngine(twoHumanConfig(), rand.New(rand.NewSource(17)), bus)
	require.NoError(t, err)

	cell := firstSuperposition(e.board)
	e.ApplyMove(cell.Row, cell.Col)
	e.ApplyMove(cell.Row, cell.Col)
	e.ApplyMove(cell.Row, cell.Col) // collapses
	e.StartObservationPhase()

	assert.Contains(t, types, events.TypeMoveApplied)
	assert.Contains(t, types, events.TypeCellCollapsed)
	assert.Contains(t, types, events.TypePhaseChanged)
	assert.Contains(t, types, events.TypeGameEnded)

	// The game-ended event arrives last.
	assert.Equal(t, events.TypeGameEnded, types[len(types)-1])
}

func TestSnapshot_ReflectsState(t *testing.T) {
	e := newTestEngine(t, twoHumanConfig(), 19)
	cell := firstSuperposition(e.board)
	require.True(t, e.ApplyMove(cell.Row, cell.Col))

	snap := e.Snapshot()
	assert.Equal(t, e.ID().String(), snap.GameID)
	assert.Equal(t, 6, snap.GridSize)
	assert.Equal(t, "Placement", snap.Phase)
	assert.Equal(t, "red", snap.CurrentPlayer)
	assert.Equal(t, 17, snap.TurnsRemaining)
	assert.Len(t, snap.Cells, 36)

	cs := snap.Cells[cell.ID(6)]
	assert.Equal(t, 1, cs.InfluenceBlue)
	assert.Equal(t, "superposition", cs.State)
	assert.Equal(t, -1, cs.PartnerRow)

	// Entangled cells expose their partner.
	for _, c := range snap.Cells {
		if c.State == "entangled" {
			assert.GreaterOrEqual(t, c.PartnerRow, 0)
			assert.GreaterOrEqual(t, c.PartnerCol, 0)
		}
	}
}
