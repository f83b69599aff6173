// Package compose implements the adaptive text-layout and composition engine:
// it partitions a canvas into safe zones, fits each labeled text block at the
// largest font size whose wrapped rendering stays inside its zone, and draws
// the blocks over a background image while keeping the central band free of
// text.
package compose

import "image"

// Role labels a text block and determines its target zone and size defaults.
type Role string

const (
	RoleHook Role = "hook"
	RoleBody Role = "body"
	RoleCTA  Role = "cta"
)

// BlockStyle selects the rendering variant for a block.
type BlockStyle string

const (
	StylePlain  BlockStyle = "plain"
	StyleButton BlockStyle = "button"
)

// TextBlock is one labeled piece of overlay copy. Zero-valued styling fields
// are filled from the pipeline defaults before fitting.
type TextBlock struct {
	Role          Role
	Content       string
	RequestedSize int
	MinSize       int
	Color         string
	OutlineColor  string
	OutlineWidth  int
	Style         BlockStyle
	ButtonColor   string
}

// ZoneName identifies one of the three horizontal safe-zone bands.
type ZoneName string

const (
	ZoneTop    ZoneName = "top"
	ZoneMiddle ZoneName = "middle"
	ZoneBottom ZoneName = "bottom"
)

// Zone is a horizontal band of the canvas. Reserved zones never receive text.
type Zone struct {
	Name     ZoneName
	Rect     image.Rectangle
	Reserved bool
}

// Usable returns the zone rectangle inset by the layout padding.
func (z Zone) Usable(padding int) image.Rectangle {
	return z.Rect.Inset(padding)
}

// Layout carries the safe-zone geometry and the fitting parameters. All
// values are explicit configuration so boundary setups can be exercised in
// tests.
type Layout struct {
	TopFraction    float64
	MiddleFraction float64
	BottomFraction float64
	Padding        int
	LineSpacing    int
	SizeStep       int
	// Share of the bottom zone's usable height given to the body block when
	// both body and cta are present. Each block is fitted independently
	// against its own sub-region.
	BodySplit float64
}

// DefaultLayout returns the reference 30/40/30 safe-zone geometry.
func DefaultLayout() Layout {
	return Layout{
		TopFraction:    0.30,
		MiddleFraction: 0.40,
		BottomFraction: 0.30,
		Padding:        40,
		LineSpacing:    8,
		SizeStep:       2,
		BodySplit:      0.65,
	}
}

// Defaults supplies per-role styling applied to blocks whose fields are zero.
type Defaults struct {
	FontFamily   string
	Sizes        map[Role]int
	MinSizes     map[Role]int
	Color        string
	OutlineColor string
	OutlineWidth int
	ButtonColor  string
}

// Metrics measures text at a given font family and point size. Measurements
// must be deterministic for identical inputs.
type Metrics interface {
	Measure(text, family string, size int) (widthPx, lineHeightPx int, err error)
}

// Request describes one composition call. The background image is never
// mutated; composition always produces a new canvas.
type Request struct {
	Background image.Image
	// Preset is a named output size or a "WxH" literal. When empty, Width and
	// Height are used directly.
	Preset string
	Width  int
	Height int
	Blocks []TextBlock
	// FontFamily applies to every block; empty selects the pipeline default.
	FontFamily string
	// Locale drives case mapping for hook and cta content.
	Locale string
	// Padding overrides the layout padding when positive.
	Padding int
}

// Result is the outcome of one composition call.
type Result struct {
	Image        image.Image
	ChosenSizes  map[Role]int
	WrappedLines map[Role][]string
	// Overflowed marks roles whose text did not fit even at the minimum size
	// and was rendered past the zone boundary instead of being truncated.
	Overflowed map[Role]bool
}
