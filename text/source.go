package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ErrEmptyFontData is returned when a Source is created from no data.
var ErrEmptyFontData = errors.New("text: empty font data")

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
type Source struct {
	data   []byte
	parsed *sfnt.Font
	name   string

	// shapingFont is the typesetting view of the same data, parsed
	// lazily on first Shape call. font.Font is read-only and safe for
	// concurrent use; font.Face is not and is created per call.
	shapingOnce sync.Once
	shapingFont *font.Font
	shapingErr  error
}

// NewSource creates a Source from font data.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &Source{data: dataCopy, parsed: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *Source) Name() string {
	return s.name
}

// Face creates a Face at the specified size (in the unit of the consumer,
// typically pixels or drawing units). Multiple faces can be created from
// the same Source.
func (s *Source) Face(size float64) *Face {
	return &Face{source: s, size: size}
}

// typesettingFont parses the font data for shaping, once.
func (s *Source) typesettingFont() (*font.Font, error) {
	s.shapingOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapingErr = fmt.Errorf("text: shaping parse failed: %w", err)
			return
		}
		s.shapingFont = face.Font
	})
	return s.shapingFont, s.shapingErr
}
