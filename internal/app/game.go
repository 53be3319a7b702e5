package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/swipedeck"
	"github.com/depeter/swipedeck/internal/config"
	"github.com/depeter/swipedeck/pager"
)

// Game implements ebiten.Game and drives the demo deck.
type Game struct {
	Config *config.Config

	Width, Height int

	deck  *swipedeck.View
	pages []swipedeck.Page

	// Most recent scroll tick, fed by the engine callback.
	lastPos int
	lastOff float64
}

// NewGame creates the demo game from the loaded config.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		Config: cfg,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
	}

	g.pages = BuildDeck(cfg.Demo.Pages)
	g.deck = swipedeck.NewView(cfg.Pager.Engine(), g.pages...)

	eng := g.deck.Engine()
	eng.OnPageSelected = func(page int) {
		log.Printf("page selected: %d", page)
	}
	eng.OnScrollStateChanged = func(state pager.ScrollState) {
		log.Printf("scroll state: %s", state)
	}
	eng.OnPageScroll = func(position int, offset float64) {
		g.lastPos = position
		g.lastOff = offset
	}

	// Callbacks are wired, so the initial layout tick lands in lastPos.
	g.layoutDeck()

	return g
}

// layoutDeck places the deck above the HUD strip.
func (g *Game) layoutDeck() {
	w := float64(g.Width) - DeckPadding*2
	h := float64(g.Height) - DeckPadding*2 - HUDHeight
	g.deck.SetBounds(DeckPadding, DeckPadding, w, h)
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	toggleDebugOverlay()

	g.handleKeybinds()
	g.deck.Update()

	updateInputState()
	return nil
}

// handleKeybinds drives the deck from the keyboard.
func (g *Game) handleKeybinds() {
	kb := &g.Config.Keybinds
	eng := g.deck.Engine()

	if keyRepeating(kb.NextPage) {
		eng.SetPage(eng.CurrentPage() + 1)
	}
	if keyRepeating(kb.PrevPage) {
		eng.SetPage(eng.CurrentPage() - 1)
	}
	if keyJustPressed(kb.FirstPage) {
		eng.SetPage(0)
	}
	if keyJustPressed(kb.LastPage) {
		eng.SetPage(len(g.pages) - 1)
	}
	if keyJustPressed(kb.ToggleGestures) {
		enabled := !eng.Config().ScrollEnabled
		eng.SetScrollEnabled(enabled)
		log.Printf("gestures enabled: %v", enabled)
	}

	// Digit keys jump without animation
	for i, k := range digitKeys {
		if i < len(g.pages) && inpututil.IsKeyJustPressed(k) {
			eng.SetPageWithoutAnimation(i)
		}
	}
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	g.deck.Draw(screen)
	g.drawHUD(screen)
	g.drawDebugOverlay(screen)
}

// drawHUD draws the page dots and the status line under the deck.
func (g *Game) drawHUD(screen *ebiten.Image) {
	hudY := float64(g.Height) - HUDHeight
	vector.DrawFilledRect(screen, 0, float32(hudY), float32(g.Width), float32(HUDHeight), ColorSurface, false)

	n := len(g.pages)
	if n > 0 {
		startX := float64(g.Width)/2 - DotGap*float64(n-1)/2
		cy := hudY + HUDHeight/2
		current := g.deck.CurrentPage()

		for i := 0; i < n; i++ {
			cx := startX + DotGap*float64(i)
			r, c := DotRadius, ColorDot
			if i == current {
				r, c = DotRadius*1.5, ColorAccent
			}
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), c, true)
		}

		// Marker tracking the live scroll position between dots
		mx := startX + DotGap*(float64(g.lastPos)+g.lastOff)
		vector.DrawFilledCircle(screen, float32(mx), float32(cy+DotRadius*2.5), 2, ColorAccent, true)
	}

	status := fmt.Sprintf("%s  page %d/%d  pos=%d off=%.2f",
		g.deck.Engine().State(), g.deck.CurrentPage()+1, n, g.lastPos, g.lastOff)
	ebitenutil.DebugPrintAt(screen, status, 16, int(hudY)+8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
