// Package fontpack resolves font families once at startup and exposes text
// measurement and face construction over the parsed fonts. Each family is an
// ordered chain of TTF paths; when none of them loads, an embedded fallback
// font is used so the service can always start with a usable face.
package fontpack

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Well-known family names. DisplayFamily is used for headline text and falls
// back to the embedded bold font; every other family falls back to the
// embedded regular font.
const (
	DisplayFamily = "display"
	TextFamily    = "text"
)

// Family describes an ordered font fallback chain for one logical family.
type Family struct {
	Name  string
	Paths []string
}

// Library holds fonts parsed once at startup. The font map is immutable after
// New returns, so lookups require no locking. Faces are constructed per call
// and owned by the caller: x/image opentype faces buffer glyph state and must
// not be shared between goroutines.
type Library struct {
	fonts map[string]*opentype.Font
}

// New parses every configured family, falling back to the embedded fonts when
// a chain yields no loadable file. Failure to parse even the embedded fallback
// is a startup error and should abort the process.
func New(logger zerolog.Logger, families ...Family) (*Library, error) {
	lib := &Library{fonts: make(map[string]*opentype.Font)}

	for _, fam := range families {
		name := strings.ToLower(strings.TrimSpace(fam.Name))
		if name == "" {
			continue
		}
		if f := parseFirst(logger, name, fam.Paths); f != nil {
			lib.fonts[name] = f
		}
	}

	// The built-in families must always resolve.
	for name, ttf := range map[string][]byte{DisplayFamily: gobold.TTF, TextFamily: goregular.TTF} {
		if _, ok := lib.fonts[name]; ok {
			continue
		}
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("fontpack: parse embedded font for %q: %w", name, err)
		}
		lib.fonts[name] = f
	}

	return lib, nil
}

func parseFirst(logger zerolog.Logger, name string, paths []string) *opentype.Font {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn().Str("family", name).Str("path", path).Err(err).Msg("fontpack: font file unavailable, trying next")
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			logger.Warn().Str("family", name).Str("path", path).Err(err).Msg("fontpack: font file unparsable, trying next")
			continue
		}
		logger.Debug().Str("family", name).Str("path", path).Msg("fontpack: family resolved")
		return f
	}
	return nil
}

// lookup returns the parsed font for the family, falling back to the text
// family for unknown names.
func (l *Library) lookup(family string) (*opentype.Font, error) {
	if l == nil || len(l.fonts) == 0 {
		return nil, fmt.Errorf("fontpack: library not initialized")
	}
	name := strings.ToLower(strings.TrimSpace(family))
	if f, ok := l.fonts[name]; ok {
		return f, nil
	}
	if f, ok := l.fonts[TextFamily]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("fontpack: no font for family %q", family)
}

// Face builds a new face for the family at the given point size. The returned
// face is not safe for concurrent use and should stay within one call.
func (l *Library) Face(family string, size int) (font.Face, error) {
	f, err := l.lookup(family)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontpack: face %s@%d: %w", family, size, err)
	}
	return face, nil
}

// Measure reports the advance width of text and the line height at the given
// family and size. Results are deterministic for identical inputs.
func (l *Library) Measure(text, family string, size int) (int, int, error) {
	face, err := l.Face(family, size)
	if err != nil {
		return 0, 0, err
	}
	width := font.MeasureString(face, text).Ceil()
	met := face.Metrics()
	lineHeight := (met.Ascent + met.Descent).Ceil()
	return width, lineHeight, nil
}
