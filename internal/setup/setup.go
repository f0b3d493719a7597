// Package setup turns a loaded config into the collaborators both commands
// share: a logger, a font and a card renderer.
package setup

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/assets"
	"github.com/gogpu/cardface/fonts"
	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/internal/config"
)

// Env is the result of Build.
type Env struct {
	Font     *fonts.Font
	Renderer *cardface.Renderer
}

// Build installs a text logger at cfg.LogLevel, loads the font and art
// store, and creates the renderer.
func Build(cfg config.Config) (*Env, error) {
	cardface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if cfg.GoShaper {
		text.SetShaper(text.NewGoTextShaper())
	}

	font, err := loadFont(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range cardface.Suits {
		if err := font.Require(string(s)); err != nil {
			cardface.Logger().Warn("font cannot draw suit", "font", font.Name(), "error", err)
		}
	}

	var art cardface.ImageLookup
	if cfg.AssetDir != "" {
		art = assets.NewStore(os.DirFS(cfg.AssetDir))
	}
	return &Env{Font: font, Renderer: cardface.NewRenderer(font, art)}, nil
}

func loadFont(cfg config.Config) (*fonts.Font, error) {
	opt := fonts.WithTextScale(cfg.TextScale)
	if cfg.FontPath == "" {
		return fonts.Default(opt)
	}
	return fonts.Load(cfg.FontPath, opt)
}

// NewView returns a view at bounds showing the configured card.
func (e *Env) NewView(cfg config.Config, bounds geom.Rect) *cardface.View {
	v := cardface.NewView(e.Renderer, bounds)
	v.SetCard(cfg.Rank, cfg.Suit)
	v.SetFaceUp(!cfg.FaceDown)
	v.SetFaceScale(cfg.FaceScale)
	return v
}
