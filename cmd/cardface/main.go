// Command cardface renders playing cards to a PNG file.
//
// By default it draws the card named by -rank and -suit. With -deal N it
// shuffles a deck and lays the first N cards out in a strip.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/deck"
	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/ggsurface"
	"github.com/gogpu/cardface/internal/config"
	"github.com/gogpu/cardface/internal/setup"
)

func main() {
	cfg, err := config.Load("cardface", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	env, err := setup.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var dc *gg.Context
	if cfg.Deal > 0 {
		dc = dealStrip(env, cfg)
	} else {
		dc = gg.NewContext(cfg.Width, cfg.Height)
		v := env.NewView(cfg, geom.R(0, 0, float64(cfg.Width), float64(cfg.Height)))
		v.Flush(ggsurface.New(dc, env.Font))
	}

	if err := dc.SavePNG(cfg.Output); err != nil {
		log.Fatalf("save %s: %v", cfg.Output, err)
	}
	cardface.Logger().Info("saved", "file", cfg.Output, "width", dc.Width(), "height", dc.Height())
}

// dealStrip draws cfg.Deal cards, at most a full deck, side by side.
func dealStrip(env *setup.Env, cfg config.Config) *gg.Context {
	n := min(cfg.Deal, deck.Size)
	gap := cfg.Gap
	dc := gg.NewContext(n*cfg.Width+(n+1)*gap, cfg.Height+2*gap)
	s := ggsurface.New(dc, env.Font)

	d := deck.New(nil)
	v := env.NewView(cfg, geom.Rect{})
	for i := 0; i < n; i++ {
		x := float64(gap + i*(cfg.Width+gap))
		v.Resize(geom.R(x, float64(gap), float64(cfg.Width), float64(cfg.Height)))
		if !v.NextCard(d) {
			break
		}
		v.Flush(s)
		cardface.Logger().Debug("dealt", "card", v.State().Card().String(), "remaining", d.Remaining())
	}
	return dc
}
