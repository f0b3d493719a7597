package config

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/cardface"
)

func TestLoadDefaults(t *testing.T) {
	got, err := Load("cardface", nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Width:     250,
		Height:    350,
		Rank:      12,
		Suit:      cardface.Hearts,
		FaceScale: 0.75,
		TextScale: 1,
		Output:    "card.png",
		Gap:       16,
		LogLevel:  slog.LevelWarn,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFlags(t *testing.T) {
	got, err := Load("cardface", []string{
		"-width", "100", "-height", "140", "-rank", "1", "-suit", "S",
		"-face-down", "-scale", "0.5", "-deal", "5", "-log-level", "debug",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width != 100 || got.Height != 140 || !got.FaceDown || got.FaceScale != 0.5 || got.Deal != 5 {
		t.Errorf("flags not applied: %+v", got)
	}
	if got.Card() != (cardface.Card{Rank: 1, Suit: cardface.Spades}) {
		t.Errorf("Card() = %v", got.Card())
	}
	if got.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", got.LogLevel)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("CARDFACE_WIDTH", "500")
	t.Setenv("CARDFACE_ASSETS", "/tmp/art")
	t.Setenv("CARDFACE_LOG_LEVEL", "info")

	got, err := Load("cardface", nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width != 500 || got.AssetDir != "/tmp/art" || got.LogLevel != slog.LevelInfo {
		t.Errorf("environment not applied: %+v", got)
	}

	// Flags win over the environment.
	got, err = Load("cardface", []string{"-width", "80"}, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width != 80 {
		t.Errorf("Width = %d, want flag value 80", got.Width)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"zero width", nil, []string{"-width", "0"}},
		{"rank too high", nil, []string{"-rank", "14"}},
		{"rank zero", nil, []string{"-rank", "0"}},
		{"bad suit", nil, []string{"-suit", "stars"}},
		{"negative scale", nil, []string{"-scale", "-1"}},
		{"negative deal", nil, []string{"-deal", "-2"}},
		{"bad log level", nil, []string{"-log-level", "loud"}},
		{"bad env width", map[string]string{"CARDFACE_WIDTH": "wide"}, nil},
		{"bad env scale", map[string]string{"CARDFACE_FACE_SCALE": "big"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("cardface", tt.args, io.Discard)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	if _, err := Load("cardface", []string{"-nope"}, io.Discard); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestParseSuit(t *testing.T) {
	tests := map[string]cardface.Suit{
		"spades": cardface.Spades,
		"H":      cardface.Hearts,
		"♦":      cardface.Diamonds,
		" club ": cardface.Clubs,
	}
	for in, want := range tests {
		got, err := ParseSuit(in)
		if err != nil || got != want {
			t.Errorf("ParseSuit(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}
