package image

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/rs/zerolog"
)

// SyntheticGenerator produces deterministic placeholder backgrounds derived
// from the prompt. It keeps the composition flow fully operational in local
// and CI environments while preserving the extension point for real provider
// integrations.
type SyntheticGenerator struct {
	logger zerolog.Logger
}

// NewSyntheticGenerator builds the synthetic provider.
func NewSyntheticGenerator(logger zerolog.Logger) *SyntheticGenerator {
	return &SyntheticGenerator{logger: logger}
}

// Generate renders quantity gradient backgrounds seeded from the request.
// Identical requests yield identical bytes.
func (g *SyntheticGenerator) Generate(ctx context.Context, req GenerateRequest) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	width, height := req.Width, req.Height
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 1024
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	assets := make([]Asset, 0, quantity)
	for i := 0; i < quantity; i++ {
		seed := deterministicSeed(req.RequestID, req.Prompt, req.Locale, i)
		data, err := renderGradient(width, height, seed)
		if err != nil {
			return nil, fmt.Errorf("synthetic provider: %w", err)
		}
		assets = append(assets, Asset{Data: data, Format: "image/png", Width: width, Height: height})
	}

	g.logger.Debug().
		Str("request_id", req.RequestID).
		Int("quantity", quantity).
		Int("width", width).
		Int("height", height).
		Msg("providers: generated synthetic background assets")

	return assets, nil
}

var _ Generator = (*SyntheticGenerator)(nil)

// renderGradient paints a vertical gradient between two seed-derived colors
// with a diagonal accent band, then encodes it as PNG.
func renderGradient(width, height int, seed string) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	base := colorFromSeed(seed, 0)
	accent := colorFromSeed(seed, 1)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		row := lerpColor(base, accent, t)
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, row)
		}
	}

	stripe := colorFromSeed(seed, 2)
	bandWidth := width / 16
	if bandWidth < 8 {
		bandWidth = 8
	}
	for y := 0; y < height; y++ {
		start := (y + width/2) % width
		for x := start; x < start+bandWidth && x < width; x++ {
			img.SetNRGBA(x, y, stripe)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

func colorFromSeed(seed string, shift int) color.NRGBA {
	if len(seed) < 6 {
		seed = "0f0c29ffffff"
	}
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	segment := doubled[start : start+6]
	return color.NRGBA{
		R: hexByte(segment[0:2]),
		G: hexByte(segment[2:4]),
		B: hexByte(segment[4:6]),
		A: 255,
	}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		v <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}

func deterministicSeed(parts ...any) string {
	hasher := sha256.New()
	for _, part := range parts {
		fmt.Fprintf(hasher, "%v|", part)
	}
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}
