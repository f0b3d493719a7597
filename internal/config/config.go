// Package config loads command settings from flags, falling back to
// CARDFACE_* environment variables and then to built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/cardface"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings shared by the cardface commands.
type Config struct {
	Width     int
	Height    int
	Rank      int
	Suit      cardface.Suit
	FaceDown  bool
	FaceScale float64
	AssetDir  string
	FontPath  string
	TextScale float64
	Output    string
	Deal      int
	Gap       int
	LogLevel  slog.Level
	GoShaper  bool
}

// Card returns the configured card.
func (c Config) Card() cardface.Card {
	return cardface.Card{Rank: c.Rank, Suit: c.Suit}
}

// Load parses args (without the program name) for the command called name.
// Usage and parse errors are written to errOut.
func Load(name string, args []string, errOut io.Writer) (Config, error) {
	var c Config
	var suit, level string

	width, err := envInt("CARDFACE_WIDTH", 250)
	if err != nil {
		return Config{}, err
	}
	height, err := envInt("CARDFACE_HEIGHT", 350)
	if err != nil {
		return Config{}, err
	}
	scale, err := envFloat("CARDFACE_FACE_SCALE", cardface.DefaultRatios().FaceArtSizeToBoundsSize)
	if err != nil {
		return Config{}, err
	}
	textScale, err := envFloat("CARDFACE_TEXT_SCALE", 1)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVar(&c.Width, "width", width, "card width in pixels")
	fs.IntVar(&c.Height, "height", height, "card height in pixels")
	fs.IntVar(&c.Rank, "rank", 12, "card rank, 1 (ace) to 13 (king)")
	fs.StringVar(&suit, "suit", "hearts", "card suit: spades, hearts, diamonds, clubs or S/H/D/C")
	fs.BoolVar(&c.FaceDown, "face-down", false, "show the card back")
	fs.Float64Var(&c.FaceScale, "scale", scale, "face art size relative to the card")
	fs.StringVar(&c.AssetDir, "assets", envOr("CARDFACE_ASSETS", ""), "directory holding card art")
	fs.StringVar(&c.FontPath, "font", envOr("CARDFACE_FONT", ""), "TTF/OTF font file (default Go Regular)")
	fs.Float64Var(&c.TextScale, "text-scale", textScale, "multiplier applied to every font size")
	fs.StringVar(&c.Output, "output", envOr("CARDFACE_OUTPUT", "card.png"), "output PNG file")
	fs.IntVar(&c.Deal, "deal", 0, "deal N random cards into one strip instead of a single card")
	fs.IntVar(&c.Gap, "gap", 16, "pixels between dealt cards")
	fs.StringVar(&level, "log-level", envOr("CARDFACE_LOG_LEVEL", "warn"), "debug, info, warn or error")
	fs.BoolVar(&c.GoShaper, "shaper", false, "shape text with go-text/typesetting")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if c.Suit, err = ParseSuit(suit); err != nil {
		return Config{}, err
	}
	if c.LogLevel, err = parseLogLevel(level); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Rank < cardface.MinRank || c.Rank > cardface.MaxRank:
		return fmt.Errorf("%w: rank %d", ErrInvalid, c.Rank)
	case c.FaceScale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalid, c.FaceScale)
	case c.TextScale <= 0:
		return fmt.Errorf("%w: text scale %v", ErrInvalid, c.TextScale)
	case c.Deal < 0:
		return fmt.Errorf("%w: deal %d", ErrInvalid, c.Deal)
	case c.Gap < 0:
		return fmt.Errorf("%w: gap %d", ErrInvalid, c.Gap)
	}
	return nil
}

// ParseSuit accepts a suit name, its initial or its symbol.
func ParseSuit(s string) (cardface.Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "spade", "spades", string(cardface.Spades):
		return cardface.Spades, nil
	case "h", "heart", "hearts", string(cardface.Hearts):
		return cardface.Hearts, nil
	case "d", "diamond", "diamonds", string(cardface.Diamonds):
		return cardface.Diamonds, nil
	case "c", "club", "clubs", string(cardface.Clubs):
		return cardface.Clubs, nil
	}
	return "", fmt.Errorf("%w: suit %q", ErrInvalid, s)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, v, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, v, err)
	}
	return f, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
}
