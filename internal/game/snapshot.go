package game

import "github.com/quantumgrid/quantumgrid/internal/game/core"

// CellSnapshot is the observer-facing view of one cell.
type CellSnapshot struct {
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	State         string `json:"state"`
	Owner         string `json:"owner"`
	PartnerRow    int    `json:"partner_row"`
	PartnerCol    int    `json:"partner_col"`
	InfluenceBlue int    `json:"influence_blue"`
	InfluenceRed  int    `json:"influence_red"`
}

// Snapshot is a full read-only copy of the observable state, returned after
// every mutating command. The presentation layer consumes snapshots; the
// core never learns about its observers.
type Snapshot struct {
	GameID         string         `json:"game_id"`
	GridSize       int            `json:"grid_size"`
	Phase          string         `json:"phase"`
	CurrentPlayer  string         `json:"current_player"`
	TurnsRemaining int            `json:"turns_remaining"`
	BlueScore      int            `json:"blue_score"`
	RedScore       int            `json:"red_score"`
	BotThinking    bool           `json:"bot_thinking"`
	Message        string         `json:"message"`
	Result         GameResult     `json:"result"`
	Cells          []CellSnapshot `json:"cells"`
}

// Snapshot captures the current observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	cells := make([]CellSnapshot, len(e.board.Cells))
	for i := range e.board.Cells {
		c := &e.board.Cells[i]
		cs := CellSnapshot{
			Row:           c.Row,
			Col:           c.Col,
			State:         c.State.Kind().String(),
			Owner:         c.Owner().String(),
			PartnerRow:    -1,
			PartnerCol:    -1,
			InfluenceBlue: c.InfluenceBlue,
			InfluenceRed:  c.InfluenceRed,
		}
		if partner, ok := c.State.Partner(); ok {
			cs.PartnerRow = partner.Row
			cs.PartnerCol = partner.Col
		}
		cells[i] = cs
	}

	return Snapshot{
		GameID:         e.id.String(),
		GridSize:       e.board.Size,
		Phase:          e.phase.String(),
		CurrentPlayer:  e.current.String(),
		TurnsRemaining: e.turnsRemaining,
		BlueScore:      e.blueScore,
		RedScore:       e.redScore,
		BotThinking:    e.thinking,
		Message:        e.message,
		Result:         e.resultLocked(),
		Cells:          cells,
	}
}

// Board returns the live board. Callers must treat it as read-only; it is
// exposed for the CLI renderer and tests.
func (e *Engine) Board() *core.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}
