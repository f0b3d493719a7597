// Package assets looks up card art in a file system.
//
// Keys are card names such as "Q♥" or "cardback". Before lookup a key is
// normalised to NFC and stripped of variation selectors, so "Q♥️" (emoji
// presentation) finds the file "Q♥.png". PNG, JPEG, WebP and BMP files are
// recognised.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"path"
	"unicode"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/cardface"
)

// ErrNotFound is returned by Open when no file exists for a key.
var ErrNotFound = errors.New("assets: image not found")

// Extensions lists the file extensions tried for a key, in order.
var Extensions = []string{".png", ".webp", ".jpg", ".jpeg", ".bmp"}

// NormalizeKey returns the file name stem for key.
func NormalizeKey(key string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Variation_Selector)))
	out, _, err := transform.String(t, key)
	if err != nil {
		return key
	}
	return out
}

// Store finds and decodes card art from a file system. Decoded images are
// kept for the lifetime of the Store. A Store is not safe for concurrent
// use.
type Store struct {
	fsys  fs.FS
	dir   string
	cache map[string]image.Image
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDir makes the store look inside dir of the file system.
func WithDir(dir string) StoreOption {
	return func(s *Store) {
		s.dir = dir
	}
}

// NewStore returns a store reading from fsys.
func NewStore(fsys fs.FS, opts ...StoreOption) *Store {
	s := &Store{fsys: fsys, dir: ".", cache: make(map[string]image.Image)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open finds and decodes the image for key. It returns ErrNotFound when no
// file with a known extension exists.
func (s *Store) Open(key string) (image.Image, error) {
	stem := NormalizeKey(key)
	if img, ok := s.cache[stem]; ok {
		return img, nil
	}
	for _, ext := range Extensions {
		name := path.Join(s.dir, stem+ext)
		img, err := s.decode(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.cache[stem] = img
		return img, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
}

func (s *Store) decode(name string) (image.Image, error) {
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// LookupImage implements cardface.ImageLookup. Missing files report false;
// files that fail to decode are logged and also report false.
func (s *Store) LookupImage(key string) (image.Image, bool) {
	img, err := s.Open(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			cardface.Logger().Warn("card art unusable", "key", key, "error", err)
		}
		return nil, false
	}
	return img, true
}

// Map is an in-memory image lookup keyed by normalised key.
type Map map[string]image.Image

// LookupImage implements cardface.ImageLookup.
func (m Map) LookupImage(key string) (image.Image, bool) {
	img, ok := m[NormalizeKey(key)]
	return img, ok
}
