package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

const (
	borderPadding = 10 // Padding around game area
)

var enemyColors = []rl.Color{rl.SkyBlue, rl.Purple, rl.Orange, rl.Pink}

// Renderer draws snapshots in a raylib window. Render only stores the
// snapshot; Draw paints it from the main loop, which owns the window.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32

	snap game.Snapshot
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// WindowSize returns the window size that fits grid at cellSize pixels
// per cell next to the stats panel.
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize + 2*borderPadding)
	h := int32(grid.Height*cellSize + 2*borderPadding)
	return w + w/6, h
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the width
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Render keeps the latest snapshot for the next Draw
func (r *Renderer) Render(snap game.Snapshot) {
	r.snap = snap
}

// Draw paints the latest snapshot
func (r *Renderer) Draw() {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	snap := r.snap
	grid := snap.Grid
	if grid.Width == 0 || grid.Height == 0 {
		return
	}

	fontSize := min(r.screenHeight/30, r.statsPanel/8)
	lineHeight := fontSize + fontSize/2

	// Cell size from the space left after padding
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	if snap.Phase == game.PhaseMenu {
		r.drawMenu(snap, fontSize, lineHeight)
		return
	}

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	for _, c := range snap.Cells {
		r.drawCell(c)
	}
	r.drawHeadMarkers(snap)
	r.drawStatsPanel(snap, fontSize, lineHeight)

	if snap.Phase == game.PhaseRoundOver {
		r.drawCentered([]string{
			"Game Over!",
			fmt.Sprintf("Score: %d", scoreOf(snap)),
			"R restart - M menu - Q quit",
		}, fontSize*2, lineHeight*2, rl.Red)
	}
}

func (r *Renderer) cellRect(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawCell(c game.Cell) {
	x, y := r.cellRect(c.Pos)
	var color rl.Color
	switch c.Kind {
	case entity.KindWall:
		color = rl.LightGray
	case entity.KindFood:
		color = rl.Red
	default:
		color = rl.Green
		if c.Owner == entity.Enemy {
			color = enemyColors[c.SnakeID%len(enemyColors)]
		}
		switch c.Role {
		case entity.Head:
			color = brighter(color)
		case entity.Tail:
			color = rl.White
		}
	}
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

// drawHeadMarkers draws a triangle on each head pointing where it moves
func (r *Renderer) drawHeadMarkers(snap game.Snapshot) {
	for i, c := range snap.Cells {
		if c.Kind != entity.KindSegment || c.Role != entity.Head || i+1 >= len(snap.Cells) {
			continue
		}
		neck := snap.Cells[i+1]
		if neck.Kind != entity.KindSegment || neck.SnakeID != c.SnakeID {
			continue
		}
		dir, ok := snap.Grid.DirectionTo(neck.Pos, c.Pos)
		if !ok {
			continue
		}

		headX, headY := r.cellRect(c.Pos)
		half := r.cellSize / 2
		v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(headX + x), Y: float32(headY + y)} }
		switch dir {
		case types.Right:
			rl.DrawTriangle(v(r.cellSize, half), v(half, 0), v(half, r.cellSize), rl.Yellow)
		case types.Left:
			rl.DrawTriangle(v(0, half), v(half, 0), v(half, r.cellSize), rl.Yellow)
		case types.Down:
			rl.DrawTriangle(v(half, r.cellSize), v(0, half), v(r.cellSize, half), rl.Yellow)
		default:
			rl.DrawTriangle(v(half, 0), v(0, half), v(r.cellSize, half), rl.Yellow)
		}
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, statsX, statsY, fontSize, color)
		statsY += lineHeight
	}

	line(fmt.Sprintf("Mode: %s", snap.Mode), rl.White)
	line(fmt.Sprintf("Tick: %d", snap.Tick), rl.White)
	if snap.Mode == game.Competitive {
		line(fmt.Sprintf("Player: %d", snap.PlayerScore), rl.Green)
	}
	line(fmt.Sprintf("Enemies: %d", snap.EnemyScore), rl.SkyBlue)

	statsY += lineHeight / 2
	s := snap.Session
	line(fmt.Sprintf("Session (%s):", sessionLabel(s)), rl.White)
	line(fmt.Sprintf("Rounds: %d/%d", s.Rounds, s.TotalRounds), rl.White)
	line(fmt.Sprintf("Best: %d", s.HighScore), rl.White)
	line(fmt.Sprintf("Avg: %.2f", s.MeanScore), rl.White)
	line(fmt.Sprintf("Median: %.1f", s.MedianScore), rl.White)
}

func (r *Renderer) drawMenu(snap game.Snapshot, fontSize, lineHeight int32) {
	lines := []string{
		"SNAKE",
		"Arrows / Enter - play",
		"W - watch the AI",
		"Q - quit",
	}
	if snap.Session.Rounds > 0 {
		lines = append(lines, fmt.Sprintf("Best %d over %d %s rounds", snap.Session.HighScore, snap.Session.Rounds, sessionLabel(snap.Session)))
	}
	r.drawCentered(lines, fontSize*2, lineHeight*2, rl.RayWhite)
}

func (r *Renderer) drawCentered(lines []string, fontSize, lineHeight int32, color rl.Color) {
	top := r.offsetY + r.totalGridHeight/2 - int32(len(lines))*lineHeight/2
	for i, text := range lines {
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text, r.offsetX+(r.totalGridWidth-width)/2, top+int32(i)*lineHeight, fontSize, color)
	}
}

func brighter(c rl.Color) rl.Color {
	scale := func(v uint8) uint8 {
		if f := float32(v) * 1.3; f < 255 {
			return uint8(f)
		}
		return 255
	}
	return rl.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 255}
}

func scoreOf(snap game.Snapshot) int {
	if snap.Mode == game.Observer {
		return snap.EnemyScore
	}
	return snap.PlayerScore
}

func sessionLabel(s manager.Summary) string {
	if s.Competitive {
		return "played"
	}
	return "watched"
}
