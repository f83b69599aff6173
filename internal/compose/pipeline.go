package compose

import (
	"errors"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoBackground is returned when a composition request carries no image.
var ErrNoBackground = errors.New("compose: background image is required")

// ErrNoOutputSize is returned when neither a preset nor explicit dimensions
// are provided.
var ErrNoOutputSize = errors.New("compose: output size is required")

// Pipeline orchestrates zone allocation, font fitting and rendering. It holds
// no per-request state; repeated calls with identical inputs produce
// byte-identical output given deterministic font metrics.
type Pipeline struct {
	fonts    FaceSource
	layout   Layout
	defaults Defaults
	logger   zerolog.Logger
}

// NewPipeline wires a pipeline with explicit configuration. Nothing is read
// from ambient state.
func NewPipeline(fonts FaceSource, layout Layout, defaults Defaults, logger zerolog.Logger) *Pipeline {
	return &Pipeline{fonts: fonts, layout: layout, defaults: defaults, logger: logger}
}

// Compose resizes the background to the requested output size, allocates the
// safe zones and fits and renders every non-empty block into its designated
// zone: hook into the top band, body and cta stacked in the bottom band. The
// middle band never receives text. The background image is not modified;
// the result is always a new canvas.
func (p *Pipeline) Compose(req Request) (*Result, error) {
	width, height, err := p.resolveSize(req)
	if err != nil {
		return nil, err
	}
	if req.Background == nil {
		return nil, ErrNoBackground
	}

	layout := p.layout
	if req.Padding > 0 {
		layout.Padding = req.Padding
	}

	// Zone allocation happens before any pixel work so configuration errors
	// surface without a partially rendered canvas.
	zones, err := AllocateZones(width, height, layout)
	if err != nil {
		return nil, err
	}

	blocks := p.collectBlocks(req)

	// Aspect-fill with center crop; no letterboxing.
	canvas := imaging.Fill(req.Background, width, height, imaging.Center, imaging.Lanczos)

	result := &Result{
		Image:        canvas,
		ChosenSizes:  make(map[Role]int),
		WrappedLines: make(map[Role][]string),
		Overflowed:   make(map[Role]bool),
	}
	if len(blocks) == 0 {
		return result, nil
	}

	dc := gg.NewContextForImage(canvas)
	renderer := NewRenderer(p.fonts)
	family := req.FontFamily
	if family == "" {
		family = p.defaults.FontFamily
	}

	top := zoneByName(zones, ZoneTop).Usable(layout.Padding)
	bottom := zoneByName(zones, ZoneBottom).Usable(layout.Padding)
	regions := map[Role]image.Rectangle{RoleHook: top, RoleBody: bottom, RoleCTA: bottom}
	_, hasBody := blocks[RoleBody]
	_, hasCTA := blocks[RoleCTA]
	if hasBody && hasCTA {
		// Body and cta each get an independent sub-region of the bottom band,
		// body above cta.
		split := bottom.Min.Y + int(float64(bottom.Dy())*layout.BodySplit)
		regions[RoleBody] = image.Rect(bottom.Min.X, bottom.Min.Y, bottom.Max.X, split)
		regions[RoleCTA] = image.Rect(bottom.Min.X, split, bottom.Max.X, bottom.Max.Y)
	}

	for _, role := range []Role{RoleHook, RoleBody, RoleCTA} {
		blk, ok := blocks[role]
		if !ok {
			continue
		}
		region := regions[role]
		fit, err := FitBlock(p.fonts, blk, family, region, layout)
		if err != nil {
			return nil, err
		}
		if fit.Overflow {
			p.logger.Warn().
				Str("role", string(role)).
				Int("size", fit.Size).
				Int("block_height", fit.Height).
				Int("zone_height", region.Dy()).
				Msg("compose: block exceeds zone at minimum size, rendering past zone boundary")
		}
		if err := renderer.Render(dc, blk, fit, region, family, layout.LineSpacing); err != nil {
			return nil, err
		}
		result.ChosenSizes[role] = fit.Size
		result.WrappedLines[role] = fit.Lines
		result.Overflowed[role] = fit.Overflow
	}

	result.Image = dc.Image()
	return result, nil
}

func (p *Pipeline) resolveSize(req Request) (int, int, error) {
	if req.Preset != "" {
		return ResolveSize(req.Preset)
	}
	if req.Width > 0 && req.Height > 0 {
		return req.Width, req.Height, nil
	}
	return 0, 0, ErrNoOutputSize
}

// collectBlocks normalizes the request blocks, applying role defaults and
// dropping blocks with empty content. Hook and cta copy is upper-cased using
// the request locale. At most one block per role is kept.
func (p *Pipeline) collectBlocks(req Request) map[Role]TextBlock {
	upper := cases.Upper(language.Make(req.Locale))
	blocks := make(map[Role]TextBlock)
	for _, blk := range req.Blocks {
		content := strings.TrimSpace(blk.Content)
		if content == "" {
			continue
		}
		switch blk.Role {
		case RoleHook, RoleCTA:
			blk.Content = upper.String(content)
		case RoleBody:
			blk.Content = content
		default:
			continue
		}
		blocks[blk.Role] = p.applyDefaults(blk)
	}
	return blocks
}

func (p *Pipeline) applyDefaults(blk TextBlock) TextBlock {
	if blk.RequestedSize <= 0 {
		blk.RequestedSize = p.defaults.Sizes[blk.Role]
	}
	if blk.MinSize <= 0 {
		blk.MinSize = p.defaults.MinSizes[blk.Role]
	}
	if blk.Color == "" {
		blk.Color = p.defaults.Color
	}
	if blk.OutlineColor == "" {
		blk.OutlineColor = p.defaults.OutlineColor
	}
	if blk.OutlineWidth == 0 {
		blk.OutlineWidth = p.defaults.OutlineWidth
	}
	if blk.Style == "" {
		blk.Style = StylePlain
	}
	if blk.ButtonColor == "" {
		blk.ButtonColor = p.defaults.ButtonColor
	}
	return blk
}

func zoneByName(zones []Zone, name ZoneName) Zone {
	for _, z := range zones {
		if z.Name == name {
			return z
		}
	}
	return Zone{}
}
