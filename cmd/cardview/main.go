// Command cardview shows one card in a window and reacts to input.
//
// Keys:
//
//	Right, Left   deal the next card from a shuffled deck
//	Space, click  flip the card
//	+, -, wheel   zoom the face art
//	R             reshuffle
//	Esc           quit
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/cardface/internal/config"
	"github.com/gogpu/cardface/internal/setup"
)

func main() {
	cfg, err := config.Load("cardview", os.Args[1:], os.Stderr)
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
	g := newGame(env, cfg)

	ebiten.SetWindowSize(cfg.Width+2*cfg.Gap, cfg.Height+2*cfg.Gap+statusHeight)
	ebiten.SetWindowTitle("cardview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
