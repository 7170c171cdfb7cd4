package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
)

const statusHint = "click the ball · [p]ause · [q]uit "

// TerminalRenderer draws session snapshots onto a tcell screen.
// The bottom row is the status bar, everything above it is the arena
type TerminalRenderer struct {
	mu       sync.Mutex
	screen   tcell.Screen
	viewport Viewport
	ball     tcell.Style

	// Last drawn ball, used to resolve pointer cells
	ballPos core.Point2D
}

// NewTerminalRenderer creates a renderer sized to the screen; world bounds are taken from each snapshot
func NewTerminalRenderer(screen tcell.Screen, ballColor tcell.Color) *TerminalRenderer {
	if ballColor == tcell.ColorDefault {
		ballColor = RgbBallDefault
	}

	r := &TerminalRenderer{
		screen: screen,
		ball:   tcell.StyleDefault.Foreground(ballColor).Background(RgbArena),
	}
	screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	w, h := screen.Size()
	r.resizeLocked(w, h)
	return r
}

// Resize updates the cell grid after a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resizeLocked(width, height)
}

func (r *TerminalRenderer) resizeLocked(width, height int) {
	r.viewport.Cols = width
	r.viewport.Rows = height - 1
}

// Viewport returns the current mapping
func (r *TerminalRenderer) Viewport() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// PointerToWorld resolves a mouse cell to the world point inside that cell nearest the last drawn ball,
// so a click registers exactly when the clicked cell is one the ball was drawn on.
// Returns false for the status bar or before the first frame
func (r *TerminalRenderer) PointerToWorld(x, y int) (core.Point2D, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.viewport.Valid() || !r.viewport.Contains(x, y) {
		return core.Point2D{}, false
	}
	return r.viewport.ClosestPoint(x, y, r.ballPos), true
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(snap engine.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewport.World = snap.Bounds
	r.ballPos = snap.Position

	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return nil
	}

	if r.viewport.Valid() {
		r.drawArena()
		r.drawBall(snap)
	}
	r.drawStatusBar(snap, width, height-1)

	r.screen.Show()
	return nil
}

func (r *TerminalRenderer) drawArena() {
	style := tcell.StyleDefault.Background(RgbArena)
	for y := 0; y < r.viewport.Rows; y++ {
		for x := 0; x < r.viewport.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBall fills every cell the ball overlaps
func (r *TerminalRenderer) drawBall(snap engine.Snapshot) {
	v := r.viewport
	rad := float64(snap.Radius)

	minCol, minRow := v.WorldToCell(core.Point2D{X: snap.Position.X - rad, Y: snap.Position.Y - rad})
	maxCol, maxRow := v.WorldToCell(core.Point2D{X: snap.Position.X + rad, Y: snap.Position.Y + rad})

	// A circle tangent to a cell's low edge still touches the cell before it
	for row := minRow - 1; row <= maxRow; row++ {
		for col := minCol - 1; col <= maxCol; col++ {
			if !v.Contains(col, row) {
				continue
			}
			if physics.Contains(v.ClosestPoint(col, row, snap.Position), snap.Position, rad) {
				r.screen.SetContent(col, row, BallRune, nil, r.ball)
			}
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, width, y int) {
	if y < 0 {
		return
	}

	bg := tcell.StyleDefault.Background(RgbStatusBg)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, bg)
	}

	x := drawText(r.screen, 0, y, width, fmt.Sprintf(" Score: %d ", snap.Score), bg.Foreground(RgbStatusBar).Bold(true))
	secs := int(snap.Elapsed.Seconds())
	x = drawText(r.screen, x, y, width, fmt.Sprintf(" %d:%02d ", secs/60, secs%60), bg.Foreground(RgbHint))
	if snap.Paused {
		drawText(r.screen, x, y, width, " PAUSED ", bg.Foreground(RgbStatusPaused).Bold(true))
	}

	hintX := width - len([]rune(statusHint))
	if hintX > x+8 {
		drawText(r.screen, hintX, y, width, statusHint, bg.Foreground(RgbHint))
	}
}

// drawText writes s starting at x and returns the column after the last rune
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
