package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// toggleDebugOverlay toggles the debug overlay on F12.
func toggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// drawDebugOverlay draws pager internals if visible.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 16.0
		marginR = 20.0
		marginT = 20.0
	)

	eng := g.deck.Engine()
	cfg := eng.Config()

	lines := []string{
		"Debug: Pager (F12 to close)",
		fmt.Sprintf("state:     %s", eng.State()),
		fmt.Sprintf("page:      %d / %d", eng.CurrentPage()+1, len(g.pages)),
		fmt.Sprintf("offset:    %.1f", g.deck.Offset()),
		fmt.Sprintf("last tick: pos=%d off=%.3f", g.lastPos, g.lastOff),
		fmt.Sprintf("dragging:  %v", eng.Dragging()),
		fmt.Sprintf("gestures:  %v", cfg.ScrollEnabled),
		fmt.Sprintf("direction: %s  margin %.0fpx", cfg.Direction, cfg.PageMargin),
	}

	panelW := 300.0
	panelH := float64(len(lines))*lineH + padY*2
	px := float64(g.Width) - panelW - marginR
	py := marginT

	// Background
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	y := py + padY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(px+padX), int(y))
		y += lineH
	}
}
