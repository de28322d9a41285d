package events

// Event type constants
const (
	TypeGameStarted         = "game.started"
	TypeGameReset           = "game.reset"
	TypeMoveApplied         = "move.applied"
	TypeMoveRejected        = "move.rejected"
	TypeInfluencePropagated = "influence.propagated"
	TypeCellCollapsed       = "cell.collapsed"
	TypeEntanglementSevered = "entanglement.severed"
	TypePhaseChanged        = "phase.changed"
	TypeBotMove             = "bot.move"
	TypeGameEnded           = "game.ended"
)

// GameStartedEvent is published when a session is configured and reset
type GameStartedEvent struct {
	BaseEvent
	GridSize   int    `json:"grid_size"`
	TurnBudget int    `json:"turn_budget"`
	VsBot      bool   `json:"vs_bot"`
	Difficulty string `json:"difficulty,omitempty"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, gridSize, turnBudget int, vsBot bool, difficulty string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:  newBase(TypeGameStarted, gameID),
		GridSize:   gridSize,
		TurnBudget: turnBudget,
		VsBot:      vsBot,
		Difficulty: difficulty,
	}
}

// GameResetEvent is published when an in-progress session is rebuilt
type GameResetEvent struct {
	BaseEvent
}

// NewGameResetEvent creates a new GameResetEvent
func NewGameResetEvent(gameID string) *GameResetEvent {
	return &GameResetEvent{BaseEvent: newBase(TypeGameReset, gameID)}
}

// MoveAppliedEvent is published after a placement move mutates the board
type MoveAppliedEvent struct {
	BaseEvent
	Player string `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent
func NewMoveAppliedEvent(gameID, player string, row, col int) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: newBase(TypeMoveApplied, gameID),
		Player:    player,
		Row:       row,
		Col:       col,
	}
}

// MoveRejectedEvent is published when a move is silently refused
type MoveRejectedEvent struct {
	BaseEvent
	Player string `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Reason string `json:"reason"`
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID, player string, row, col int, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID),
		Player:    player,
		Row:       row,
		Col:       col,
		Reason:    reason,
	}
}

// InfluencePropagatedEvent is published when an entangled partner picks up
// influence from a move on its twin
type InfluencePropagatedEvent struct {
	BaseEvent
	Player  string `json:"player"`
	FromRow int    `json:"from_row"`
	FromCol int    `json:"from_col"`
	ToRow   int    `json:"to_row"`
	ToCol   int    `json:"to_col"`
}

// NewInfluencePropagatedEvent creates a new InfluencePropagatedEvent
func NewInfluencePropagatedEvent(gameID, player string, fromRow, fromCol, toRow, toCol int) *InfluencePropagatedEvent {
	return &InfluencePropagatedEvent{
		BaseEvent: newBase(TypeInfluencePropagated, gameID),
		Player:    player,
		FromRow:   fromRow,
		FromCol:   fromCol,
		ToRow:     toRow,
		ToCol:     toCol,
	}
}

// CellCollapsedEvent is published once per resolved cell. During mass
// collapse one event per cell lets a presentation layer replay the batch
// with staggered timing.
type CellCollapsedEvent struct {
	BaseEvent
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Winner string `json:"winner"`
	Mass   bool   `json:"mass"`
}

// NewCellCollapsedEvent creates a new CellCollapsedEvent
func NewCellCollapsedEvent(gameID string, row, col int, winner string, mass bool) *CellCollapsedEvent {
	return &CellCollapsedEvent{
		BaseEvent: newBase(TypeCellCollapsed, gameID),
		Row:       row,
		Col:       col,
		Winner:    winner,
		Mass:      mass,
	}
}

// EntanglementSeveredEvent is published when a collapse breaks a bond
type EntanglementSeveredEvent struct {
	BaseEvent
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewEntanglementSeveredEvent creates a new EntanglementSeveredEvent
func NewEntanglementSeveredEvent(gameID string, row, col int) *EntanglementSeveredEvent {
	return &EntanglementSeveredEvent{
		BaseEvent: newBase(TypeEntanglementSevered, gameID),
		Row:       row,
		Col:       col,
	}
}

// PhaseChangedEvent is published on every phase transition
type PhaseChangedEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(gameID, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, gameID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// BotMoveEvent is published when the bot commits to a move
type BotMoveEvent struct {
	BaseEvent
	Player     string `json:"player"`
	Difficulty string `json:"difficulty"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

// NewBotMoveEvent creates a new BotMoveEvent
func NewBotMoveEvent(gameID, player, difficulty string, row, col int) *BotMoveEvent {
	return &BotMoveEvent{
		BaseEvent:  newBase(TypeBotMove, gameID),
		Player:     player,
		Difficulty: difficulty,
		Row:        row,
		Col:        col,
	}
}

// GameEndedEvent is published when scoring completes
type GameEndedEvent struct {
	BaseEvent
	BlueScore int    `json:"blue_score"`
	RedScore  int    `json:"red_score"`
	Winner    string `json:"winner"`
	Tied      bool   `json:"tied"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, blueScore, redScore int, winner string, tied bool) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		BlueScore: blueScore,
		RedScore:  redScore,
		Winner:    winner,
		Tied:      tied,
	}
}
