package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Q♥", "Q♥"},
		{"Q♥️", "Q♥"},
		{"cardback", "cardback"},
		{"10♦︎", "10♦"},
		{"é", "é"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStoreLookup(t *testing.T) {
	fsys := fstest.MapFS{
		"Q♥.png":       {Data: encodePNG(t, 4, 6, color.RGBA{R: 255, A: 255})},
		"cardback.png": {Data: encodePNG(t, 2, 2, color.Black)},
	}
	s := NewStore(fsys)

	img, ok := s.LookupImage("Q♥️")
	if !ok {
		t.Fatal("Q♥ with variation selector not found")
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("bounds = %v", b)
	}
	if _, ok := s.LookupImage("cardback"); !ok {
		t.Error("cardback not found")
	}
	if _, ok := s.LookupImage("K♣"); ok {
		t.Error("K♣ found in empty store")
	}
}

func TestStoreCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"A♠.png": {Data: encodePNG(t, 1, 1, color.White)},
	}
	s := NewStore(fsys)
	first, err := s.Open("A♠")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	delete(fsys, "A♠.png")
	second, err := s.Open("A♠")
	if err != nil {
		t.Fatalf("cached Open: %v", err)
	}
	if first != second {
		t.Error("second Open decoded a new image")
	}
}

func TestStoreDir(t *testing.T) {
	fsys := fstest.MapFS{
		"art/2♣.png": {Data: encodePNG(t, 1, 1, color.White)},
	}
	if _, ok := NewStore(fsys).LookupImage("2♣"); ok {
		t.Error("found art outside configured dir")
	}
	if _, ok := NewStore(fsys, WithDir("art")).LookupImage("2♣"); !ok {
		t.Error("art/2♣.png not found with WithDir")
	}
}

func TestStoreErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"J♦.png": {Data: []byte("not an image")},
	}
	s := NewStore(fsys)

	if _, err := s.Open("5♠"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrNotFound", err)
	}
	_, err := s.Open("J♦")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Open(corrupt) error = %v, want decode error", err)
	}
	if _, ok := s.LookupImage("J♦"); ok {
		t.Error("corrupt image reported as found")
	}
}

func TestMap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	m := Map{"7♥": img}
	if got, ok := m.LookupImage("7♥️"); !ok || got != img {
		t.Errorf("LookupImage = %v, %v", got, ok)
	}
	if _, ok := m.LookupImage("8♥"); ok {
		t.Error("8♥ found")
	}
}
