package game

import (
	"fmt"
	"strings"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
)

// Render prints the board with unicode symbols: a dot for untouched
// superposition, a link mark for entangled cells, owner letters for
// collapsed cells and influence digits for contested ones.
func (e *Engine) Render() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	const (
		emptySymbol     = "·"
		entangledSymbol = "∞"
	)

	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < e.board.Size; col++ {
		sb.WriteString(fmt.Sprintf("%3d", col))
	}
	sb.WriteString("\n")

	for row := 0; row < e.board.Size; row++ {
		sb.WriteString(fmt.Sprintf("%2d ", row))

		for col := 0; col < e.board.Size; col++ {
			c := e.board.At(row, col)

			var symbol, color string
			switch {
			case c.State.IsCollapsed():
				if c.Owner() == core.PlayerBlue {
					symbol = "  B"
					color = colorBlue
				} else {
					symbol = "  R"
					color = colorRed
				}

			case c.State.IsEntangled():
				symbol = fmt.Sprintf(" %s%d", entangledSymbol, c.TotalInfluence())
				color = colorCyan

			case c.IsEmpty():
				symbol = "  " + emptySymbol
				color = colorGray

			default:
				// Contested superposition: show the influence split.
				symbol = fmt.Sprintf("%d:%d", c.InfluenceBlue, c.InfluenceRed)
				if dom := c.DominantInfluence(); dom == core.PlayerBlue {
					color = colorBlue
				} else if dom == core.PlayerRed {
					color = colorRed
				} else {
					color = colorGray
				}
			}
			sb.WriteString(color + symbol + colorReset)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + emptySymbol + "=empty " + entangledSymbol + "=entangled b:r=influence B/R=owner\n")
	sb.WriteString(fmt.Sprintf("phase=%s turn=%s remaining=%d blue=%d red=%d\n",
		e.phase, e.current, e.turnsRemaining, e.blueScore, e.redScore))

	return sb.String()
}
