package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Playfield layout. Each board cell is drawn two runes wide so the field
// looks roughly square in a terminal.
const (
	fieldLeft = 2
	fieldTop  = 1
	cellWidth = 2
)

// pieceColors maps piece types to their conventional display colors.
var pieceColors = map[engine.PieceType]core.Color{
	engine.PieceI: core.ColorCyan,
	engine.PieceO: core.ColorYellow,
	engine.PieceT: core.ColorMagenta,
	engine.PieceS: core.ColorGreen,
	engine.PieceZ: core.ColorRed,
	engine.PieceJ: core.ColorBlue,
	engine.PieceL: core.ColorOrange,
}

// drawGame renders the full play screen: the playfield with the falling
// piece, the HUD, and any pending achievement toast.
func drawGame(dst *core.Screen, snap engine.Snapshot, highScore int, toast *achievements.Achievement) {
	dst.Clear()

	drawField(dst, snap)
	drawHUD(dst, snap, highScore)

	switch snap.State {
	case engine.StatePaused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press p to resume ")
	case engine.StateGameOver:
		dst.DrawTextCentered(dst.Height()/2-1, " GAME OVER ")
		dst.DrawTextCentered(dst.Height()/2+1, " press r to restart, q to quit ")
	case engine.StateNotStarted:
		dst.DrawTextCentered(dst.Height()/2, " press r to start ")
	}

	if toast != nil {
		msg := fmt.Sprintf(" Achievement unlocked: %s (%s) ", toast.Name, toast.Rarity)
		dst.DrawTextColored(fieldLeft, dst.Height()-1, msg, core.ColorBrightYellow)
	}
}

// drawField renders the board border, locked cells, and the active piece.
func drawField(dst *core.Screen, snap engine.Snapshot) {
	box := core.NewRect(fieldLeft-1, fieldTop-1,
		engine.BoardWidth*cellWidth+2, engine.BoardHeight+2)
	dst.DrawBox(box)

	for y := 0; y < engine.BoardHeight; y++ {
		for x := 0; x < engine.BoardWidth; x++ {
			cell := snap.Board[y][x]
			if cell == engine.CellEmpty {
				continue
			}
			drawCell(dst, x, y, pieceColors[cell.Piece()])
		}
	}

	if snap.State == engine.StatePlaying || snap.State == engine.StatePaused {
		color := pieceColors[snap.Active]
		for _, o := range snap.ActiveBlocks() {
			drawCell(dst, o.X, o.Y, color)
		}
	}
}

// drawCell paints one board cell as a two-rune block.
func drawCell(dst *core.Screen, x, y int, c core.Color) {
	sx := fieldLeft + x*cellWidth
	sy := fieldTop + y
	dst.SetCell(sx, sy, '█', c)
	dst.SetCell(sx+1, sy, '█', c)
}

// drawHUD renders score, level, counters, elapsed time, and the next
// piece preview to the right of the playfield.
func drawHUD(dst *core.Screen, snap engine.Snapshot, highScore int) {
	x := fieldLeft + engine.BoardWidth*cellWidth + 4
	y := fieldTop

	dst.DrawText(x, y, "BLOCKFALL")
	y += 2
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	y++
	if highScore > 0 {
		dst.DrawTextColored(x, y, fmt.Sprintf("Best   %d", highScore), core.ColorGray)
		y++
	}
	dst.DrawText(x, y, fmt.Sprintf("Level  %d", snap.Level))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Lines  %d", snap.Lines))
	y++
	dst.DrawText(x, y, fmt.Sprintf("Tetris %d", snap.TetrisCount))
	y++
	if snap.Combo > 0 {
		dst.DrawTextColored(x, y, fmt.Sprintf("Combo  x%d", snap.Combo), core.ColorBrightGreen)
	}
	y += 2
	dst.DrawText(x, y, "Time "+formatDuration(snap.TimePlayed))
	y += 2

	dst.DrawText(x, y, "Next")
	y++
	color := pieceColors[snap.Next]
	for _, o := range snap.Next.Blocks(0) {
		sx := x + o.X*cellWidth
		sy := y + o.Y
		dst.SetCell(sx, sy, '█', color)
		dst.SetCell(sx+1, sy, '█', color)
	}
}

// formatDuration formats a duration as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
