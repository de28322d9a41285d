package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantumgrid/quantumgrid/internal/game/bot"
	"github.com/quantumgrid/quantumgrid/internal/game/core"
	"github.com/quantumgrid/quantumgrid/internal/game/events"
)

// Config fixes the session parameters. A session keeps them until the next
// Setup; Reset rebuilds the board wholesale under the same config.
type Config struct {
	GridSize   int
	TurnBudget int

	// VsBot installs a computer opponent playing the color opposite
	// HumanColor. When false the session is two-human and HumanColor is
	// ignored.
	VsBot         bool
	BotDifficulty bot.Difficulty
	HumanColor    core.Player

	// ThinkDelay staggers the bot's reply for presentation pacing. Zero
	// applies the bot move synchronously, which is what tests want.
	ThinkDelay time.Duration
}

// Validate checks the session parameters.
func (c Config) Validate() error {
	if !core.ValidGridSize(c.GridSize) {
		return fmt.Errorf("%w: %d", core.ErrInvalidGridSize, c.GridSize)
	}
	if c.TurnBudget <= 0 {
		return fmt.Errorf("turn budget must be positive, got %d", c.TurnBudget)
	}
	if c.VsBot && !c.HumanColor.IsActor() {
		return fmt.Errorf("%w: human color must be blue or red in bot mode", core.ErrInvalidPlayer)
	}
	return nil
}

// GameResult is the outcome reported after scoring. Decided is true only in
// bot mode with unequal scores; a two-human session never reports a single
// winner even when the scores differ.
type GameResult struct {
	Tied     bool `json:"tied"`
	HumanWon bool `json:"human_won"`
	Decided  bool `json:"decided"`
}

// Engine owns the board and the turn state machine. It is the only mutator
// of board state: it resolves collapses inline when a cell crosses the
// capture threshold, runs the mass collapse and scoring when placement
// ends, and asks the bot for a move when it is the bot's turn.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	id     uuid.UUID
	rng    *rand.Rand
	logger zerolog.Logger
	bus    events.Publisher

	board          *core.Board
	phase          GamePhase
	current        core.Player
	turnsRemaining int
	blueScore      int
	redScore       int
	message        string

	selector  bot.Selector
	botPlayer core.Player
	history   []bot.Move

	thinking bool
	// botGen invalidates scheduled bot moves across Reset and early
	// observation; a pending timer firing with a stale generation is a
	// no-op.
	botGen int
}

// NewEngine creates a session with the given config and resets it. A nil
// rng falls back to a time-seeded source; tests inject a seeded one.
func NewEngine(cfg Config, rng *rand.Rand, bus events.Publisher) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		id:     uuid.New(),
		rng:    rng,
		bus:    bus,
		logger: log.With().Str("component", "engine").Logger(),
	}
	e.configure(cfg)

	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()

	e.publish(events.NewGameStartedEvent(e.id.String(), cfg.GridSize, cfg.TurnBudget, cfg.VsBot, e.difficultyName()))
	return e, nil
}

// Setup reconfigures the session and resets it.
func (e *Engine) Setup(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.configure(cfg)
	e.resetLocked()
	e.mu.Unlock()

	e.publish(events.NewGameStartedEvent(e.id.String(), cfg.GridSize, cfg.TurnBudget, cfg.VsBot, e.difficultyName()))
	return nil
}

func (e *Engine) configure(cfg Config) {
	e.cfg = cfg
	if cfg.VsBot {
		e.botPlayer = cfg.HumanColor.Opposite()
		e.selector = bot.New(cfg.BotDifficulty, e.rng)
	} else {
		e.botPlayer = core.PlayerNone
		e.selector = nil
	}
}

// Reset abandons whatever is in flight and rebuilds an empty board:
// all cells in superposition, fresh entangled pairs, full turn budget,
// cleared bot history.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()

	e.publish(events.NewGameResetEvent(e.id.String()))
}

func (e *Engine) resetLocked() {
	e.botGen++
	e.thinking = false

	e.board = core.NewBoard(e.cfg.GridSize)
	pairs := GeneratePairs(e.cfg.GridSize, PairCount(e.cfg.GridSize), e.rng)
	applyPairs(e.board, pairs)

	e.phase = PhasePlacement
	e.turnsRemaining = e.cfg.TurnBudget
	e.blueScore = 0
	e.redScore = 0
	e.history = nil

	// The human side always opens against the bot; Blue opens a two-human
	// session.
	if e.cfg.VsBot {
		e.current = e.cfg.HumanColor
	} else {
		e.current = core.PlayerBlue
	}
	e.message = fmt.Sprintf("%s to move", title(e.current))

	e.logger.Info().
		Str("game_id", e.id.String()).
		Int("grid_size", e.cfg.GridSize).
		Int("turn_budget", e.cfg.TurnBudget).
		Int("pairs", len(pairs)).
		Bool("vs_bot", e.cfg.VsBot).
		Msg("Session reset")
}

// ApplyMove places one point of influence for the current player. It is the
// human-facing entry point: moves are silently rejected (with a status
// message) outside the placement phase, while a bot move is pending, or —
// in bot mode — when it is not the human's turn. Returns whether the board
// changed.
func (e *Engine) ApplyMove(row, col int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.CanReceiveMoves() {
		e.rejectLocked(row, col, "the placement phase is over")
		return false
	}
	if e.thinking {
		e.rejectLocked(row, col, "opponent is still thinking")
		return false
	}
	if e.cfg.VsBot && e.current != e.cfg.HumanColor {
		e.rejectLocked(row, col, "not your turn")
		return false
	}

	return e.applyMoveLocked(e.current, row, col)
}

// applyMoveLocked is the single mutation path shared by human and bot
// moves. The caller holds the lock and guarantees the phase.
func (e *Engine) applyMoveLocked(p core.Player, row, col int) bool {
	cell := e.board.At(row, col)
	if cell == nil {
		e.rejectLocked(row, col, "out of bounds")
		return false
	}
	if owner := cell.Owner(); owner == p.Opposite() {
		e.rejectLocked(row, col, fmt.Sprintf("already claimed by %s", title(owner)))
		return false
	}

	cell.AddInfluence(p, 1)

	if !cell.State.IsCollapsed() && cell.TotalInfluence() >= core.CaptureThreshold {
		e.collapseLocked(row, col, false)
	} else if partner, ok := cell.State.Partner(); ok {
		// Entanglement propagation: the partner picks up the same point
		// and is checked against the threshold on its own. Its collapse
		// does not re-trigger on this cell.
		pc := e.board.AtCoord(partner)
		pc.AddInfluence(p, 1)
		e.publish(events.NewInfluencePropagatedEvent(e.id.String(), p.String(), row, col, partner.Row, partner.Col))
		if pc.TotalInfluence() >= core.CaptureThreshold {
			e.collapseLocked(partner.Row, partner.Col, false)
		}
	}

	e.publish(events.NewMoveAppliedEvent(e.id.String(), p.String(), row, col))
	e.logger.Debug().
		Str("player", p.String()).
		Int("row", row).
		Int("col", col).
		Int("turns_remaining", e.turnsRemaining-1).
		Msg("Move applied")

	e.turnsRemaining--
	if e.turnsRemaining <= 0 {
		e.startObservationLocked("turn budget exhausted")
		return true
	}

	e.current = e.current.Opposite()
	e.message = fmt.Sprintf("%s to move", title(e.current))
	if e.cfg.VsBot && e.current == e.botPlayer {
		e.scheduleBotLocked()
	}
	return true
}

func (e *Engine) rejectLocked(row, col int, reason string) {
	e.message = reason
	e.publish(events.NewMoveRejectedEvent(e.id.String(), e.current.String(), row, col, reason))
	e.logger.Debug().
		Int("row", row).
		Int("col", col).
		Str("reason", reason).
		Msg("Move rejected")
}

// collapseLocked resolves one cell and keeps the live scores current.
func (e *Engine) collapseLocked(row, col int, mass bool) {
	winner, severedAt, severed := core.Collapse(e.board, row, col, e.rng)
	if winner == core.PlayerNone {
		return
	}

	e.publish(events.NewCellCollapsedEvent(e.id.String(), row, col, winner.String(), mass))
	if severed {
		e.publish(events.NewEntanglementSeveredEvent(e.id.String(), severedAt.Row, severedAt.Col))
	}
	if !mass {
		e.message = fmt.Sprintf("%s captures (%d,%d)", title(winner), row, col)
	}

	e.blueScore = e.board.CollapsedCount(core.PlayerBlue)
	e.redScore = e.board.CollapsedCount(core.PlayerRed)
}

// scheduleBotLocked arranges the bot's reply. With no think delay the move
// lands synchronously; otherwise a timer fires later and is dropped if the
// session was reset or pushed into observation in the meantime.
func (e *Engine) scheduleBotLocked() {
	e.thinking = true
	e.message = fmt.Sprintf("%s is thinking...", title(e.botPlayer))
	gen := e.botGen

	if e.cfg.ThinkDelay <= 0 {
		e.botMoveLocked(gen)
		return
	}

	time.AfterFunc(e.cfg.ThinkDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.botMoveLocked(gen)
	})
}

func (e *Engine) botMoveLocked(gen int) {
	if gen != e.botGen || !e.phase.CanReceiveMoves() {
		return
	}
	e.thinking = false

	move, ok := e.selector.ChooseMove(e.board, e.botPlayer, e.history)
	if !ok {
		// Nothing legally influenceable; treat as a no-op rather than
		// crashing or stalling the turn.
		e.logger.Warn().Msg("Bot found no legal move")
		e.message = fmt.Sprintf("%s has no legal move", title(e.botPlayer))
		return
	}

	e.history = bot.AppendHistory(e.history, move)
	e.publish(events.NewBotMoveEvent(e.id.String(), e.botPlayer.String(), e.selector.Difficulty().String(), move.Row, move.Col))
	e.applyMoveLocked(e.botPlayer, move.Row, move.Col)
}

// StartObservationPhase ends placement early: every undecided cell is
// collapsed and the game is scored. Either player may trigger it; it also
// runs automatically when the turn budget hits zero.
func (e *Engine) StartObservationPhase() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.CanReceiveMoves() {
		return
	}
	// Abandon any pending bot computation.
	e.botGen++
	e.thinking = false

	e.startObservationLocked("observation requested")
}

// startObservationLocked runs the Observation → Scoring → GameOver sweep as
// one synchronous batch. Order between cells carries no meaning here: no
// cell's resolution depends on another's outcome, since entanglement only
// propagates during placement moves.
func (e *Engine) startObservationLocked(reason string) {
	e.transitionLocked(PhaseObservation, reason)

	for i := range e.board.Cells {
		c := &e.board.Cells[i]
		if !c.State.IsCollapsed() {
			e.collapseLocked(c.Row, c.Col, true)
		}
	}

	e.transitionLocked(PhaseScoring, "board fully collapsed")
	blue, red := ScoreBoard(e.board)
	e.blueScore = blue.Total
	e.redScore = red.Total
	e.transitionLocked(PhaseGameOver, "scores computed")

	result := e.resultLocked()
	switch {
	case result.Tied:
		e.message = fmt.Sprintf("Game over: tied at %d", e.blueScore)
	case e.blueScore > e.redScore:
		e.message = fmt.Sprintf("Game over: Blue wins %d to %d", e.blueScore, e.redScore)
	default:
		e.message = fmt.Sprintf("Game over: Red wins %d to %d", e.redScore, e.blueScore)
	}

	winner := core.PlayerNone
	if e.blueScore > e.redScore {
		winner = core.PlayerBlue
	} else if e.redScore > e.blueScore {
		winner = core.PlayerRed
	}
	e.publish(events.NewGameEndedEvent(e.id.String(), e.blueScore, e.redScore, winner.String(), result.Tied))
	e.logger.Info().
		Int("blue_score", e.blueScore).
		Int("red_score", e.redScore).
		Bool("tied", result.Tied).
		Msg("Game over")
}

func (e *Engine) transitionLocked(target GamePhase, reason string) {
	if !e.phase.CanTransitionTo(target) {
		e.logger.Error().
			Str("from", e.phase.String()).
			Str("to", target.String()).
			Msg("Illegal phase transition attempted")
		return
	}
	from := e.phase
	e.phase = target
	e.publish(events.NewPhaseChangedEvent(e.id.String(), from.String(), target.String(), reason))
	e.logger.Info().
		Str("from", from.String()).
		Str("to", target.String()).
		Str("reason", reason).
		Msg("Phase transition")
}

// Result reports the game outcome. It is the zero value until the session
// reaches GameOver.
func (e *Engine) Result() GameResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resultLocked()
}

func (e *Engine) resultLocked() GameResult {
	if e.phase != PhaseGameOver {
		return GameResult{}
	}
	if e.blueScore == e.redScore {
		return GameResult{Tied: true}
	}
	if !e.cfg.VsBot {
		// Win/loss is a bot-mode concept; two-human sessions report
		// scores only.
		return GameResult{}
	}

	humanScore, botScore := e.blueScore, e.redScore
	if e.cfg.HumanColor == core.PlayerRed {
		humanScore, botScore = e.redScore, e.blueScore
	}
	return GameResult{HumanWon: humanScore > botScore, Decided: true}
}

func (e *Engine) publish(event events.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}

func (e *Engine) difficultyName() string {
	if e.selector == nil {
		return ""
	}
	return e.selector.Difficulty().String()
}

// Accessors. Snapshot() in snapshot.go bundles all of these for observers.

// ID returns the session identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Phase returns the current game phase.
func (e *Engine) Phase() GamePhase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// CurrentPlayer returns whose turn it is.
func (e *Engine) CurrentPlayer() core.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// TurnsRemaining returns the placement moves left.
func (e *Engine) TurnsRemaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turnsRemaining
}

// Scores returns the current blue and red scores.
func (e *Engine) Scores() (blue, red int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blueScore, e.redScore
}

// IsBotThinking reports whether a bot move is pending.
func (e *Engine) IsBotThinking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.thinking
}

// Message returns the short user-facing status line.
func (e *Engine) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

func title(p core.Player) string {
	switch p {
	case core.PlayerBlue:
		return "Blue"
	case core.PlayerRed:
		return "Red"
	default:
		return "Nobody"
	}
}
