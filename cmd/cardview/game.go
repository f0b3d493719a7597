package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/deck"
	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/ggsurface"
	"github.com/gogpu/cardface/internal/config"
	"github.com/gogpu/cardface/internal/setup"
)

const (
	statusHeight   = 28
	statusFontSize = 14
	zoomStep       = 1.1
)

var tableColor = color.RGBA{0x1b, 0x5e, 0x20, 0xff}

type game struct {
	env  *setup.Env
	cfg  config.Config
	view *cardface.View
	deck *deck.Deck

	width, height int
	card          *ebiten.Image
}

func newGame(env *setup.Env, cfg config.Config) *game {
	return &game{
		env:  env,
		cfg:  cfg,
		view: env.NewView(cfg, geom.Rect{}),
		deck: deck.New(nil),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.view.NextCard(g.deck)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.deck.Reset()
		g.view.InvalidateAppearance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.view.ToggleFaceUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.view.AdjustFaceScale(zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.view.AdjustFaceScale(1 / zoomStep)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.AdjustFaceScale(math.Pow(zoomStep, dy))
	}

	bounds := g.cardBounds()
	if bounds != g.view.State().Bounds {
		g.view.Resize(bounds)
	}
	if g.view.NeedsRender() {
		g.render()
	}
	return nil
}

// cardBounds fits the card into the window above the status line.
func (g *game) cardBounds() geom.Rect {
	gap := float64(g.cfg.Gap)
	area := geom.R(gap, gap, float64(g.width)-2*gap, float64(g.height)-2*gap-statusHeight)
	return geom.Fit(geom.Size{W: float64(g.cfg.Width), H: float64(g.cfg.Height)}, area)
}

// render rasterises the card and the status line with gg and uploads the
// result as a new ebiten image.
func (g *game) render() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	dc := gg.NewContext(g.width, g.height)
	s := ggsurface.New(dc, g.env.Font)
	g.view.Flush(s)

	st := g.view.State()
	msg := fmt.Sprintf("%s  %s  scale %.2f  %d left", st.Card(), faceName(st.FaceUp), st.FaceScale, g.deck.Remaining())
	box := geom.Size{W: float64(g.width), H: statusHeight}
	s.DrawText(msg, statusFontSize, box, gg.Translate(0, float64(g.height-statusHeight)), color.White)

	if g.card != nil {
		g.card.Deallocate()
	}
	g.card = ebiten.NewImageFromImage(dc.Image())
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(tableColor)
	if g.card != nil {
		screen.DrawImage(g.card, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func faceName(up bool) string {
	if up {
		return "face up"
	}
	return "face down"
}
