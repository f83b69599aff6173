package compose

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// FaceSource provides both measurement and drawable faces for a font family.
type FaceSource interface {
	Metrics
	Face(family string, size int) (font.Face, error)
}

// Button geometry: fixed padding around the wrapped text's bounding box.
const (
	buttonPadX = 36
	buttonPadY = 20
)

// Renderer draws fitted text blocks onto a canvas. Rendering is the only
// stage that mutates the canvas; everything before it is a pure computation.
type Renderer struct {
	fonts FaceSource
}

// NewRenderer builds a renderer over the given face source.
func NewRenderer(fonts FaceSource) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render draws one fitted block into the usable zone rectangle. Lines are
// horizontally centered. The whole block is centered vertically when it fits
// the zone; an overflowing block is anchored at the top of the zone and runs
// past its bottom edge, keeping every line intact. When the block carries the
// button style, a rounded rectangle sized to the text bounding box plus fixed
// padding is filled first and the text drawn centered on top of it.
func (r *Renderer) Render(dc *gg.Context, blk TextBlock, fit Fit, zone image.Rectangle, family string, spacing int) error {
	if len(fit.Lines) == 0 {
		return nil
	}
	face, err := r.fonts.Face(family, fit.Size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	met := face.Metrics()
	ascent := met.Ascent.Ceil()

	startY := zone.Min.Y
	if fit.Height <= zone.Dy() {
		startY += (zone.Dy() - fit.Height) / 2
	}
	centerX := float64(zone.Min.X+zone.Max.X) / 2

	if blk.Style == StyleButton {
		if err := r.drawButton(dc, blk, fit, family, centerX, startY); err != nil {
			return err
		}
	}

	fill := parseHexColor(blk.Color, color.White)
	outline := parseHexColor(blk.OutlineColor, color.Black)

	for i, line := range fit.Lines {
		baseline := float64(startY + i*(fit.LineHeight+spacing) + ascent)

		// Stroked border beneath the fill keeps text legible over arbitrary
		// imagery.
		if blk.OutlineWidth > 0 {
			dc.SetColor(outline)
			for dx := -blk.OutlineWidth; dx <= blk.OutlineWidth; dx++ {
				for dy := -blk.OutlineWidth; dy <= blk.OutlineWidth; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					dc.DrawStringAnchored(line, centerX+float64(dx), baseline+float64(dy), 0.5, 0)
				}
			}
		}

		dc.SetColor(fill)
		dc.DrawStringAnchored(line, centerX, baseline, 0.5, 0)
	}

	return nil
}

func (r *Renderer) drawButton(dc *gg.Context, blk TextBlock, fit Fit, family string, centerX float64, startY int) error {
	maxWidth := 0
	for _, line := range fit.Lines {
		w, _, err := r.fonts.Measure(line, family, fit.Size)
		if err != nil {
			return err
		}
		if w > maxWidth {
			maxWidth = w
		}
	}

	btnW := float64(maxWidth + 2*buttonPadX)
	btnH := float64(fit.Height + 2*buttonPadY)
	radius := btnH / 2

	dc.SetColor(parseHexColor(blk.ButtonColor, color.RGBA{R: 0xff, G: 0x57, B: 0x22, A: 0xff}))
	dc.DrawRoundedRectangle(centerX-btnW/2, float64(startY-buttonPadY), btnW, btnH, radius)
	dc.Fill()
	return nil
}

// parseHexColor converts "#rrggbb" or "#rrggbbaa" to a color, returning the
// fallback for anything it cannot parse.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fallback
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c
}
