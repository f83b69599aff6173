package compose

import "image"

// Fit is the outcome of a font size search for one block.
type Fit struct {
	Size       int
	Lines      []string
	LineHeight int
	Height     int
	// Overflow marks a block that did not fit even at the minimum size. Its
	// text is kept intact and rendered past the zone boundary vertically;
	// overflow is a recorded trade-off, never an error.
	Overflow bool
}

// FitBlock searches point sizes from the block's requested size down to its
// minimum in SizeStep decrements and returns the first (largest) size whose
// wrapped rendering fits the usable rectangle. The minimum size is always
// probed last regardless of step alignment. When no size in the range fits,
// the result is clamped to the minimum with Overflow set.
func FitBlock(m Metrics, blk TextBlock, family string, usable image.Rectangle, l Layout) (Fit, error) {
	requested, min := blk.RequestedSize, blk.MinSize
	if min <= 0 {
		min = 1
	}
	if requested < min {
		// Degenerate range: the caller asked for less than the floor.
		min = requested
	}
	step := l.SizeStep
	if step <= 0 {
		step = 2
	}

	var last Fit
	for size := requested; size >= min; size -= step {
		fit, err := measureAt(m, blk.Content, family, size, usable.Dx(), l.LineSpacing)
		if err != nil {
			return Fit{}, err
		}
		if fit.Height <= usable.Dy() {
			return fit, nil
		}
		last = fit
		if size > min && size-step < min {
			size = min + step // force a final probe at the exact minimum
		}
	}

	// Nothing in range fits: clamp to the minimum wrapping and let the
	// renderer overflow the zone instead of truncating text.
	if last.Size != min {
		fit, err := measureAt(m, blk.Content, family, min, usable.Dx(), l.LineSpacing)
		if err != nil {
			return Fit{}, err
		}
		last = fit
	}
	last.Overflow = true
	return last, nil
}

func measureAt(m Metrics, content, family string, size, maxWidth, spacing int) (Fit, error) {
	lines, err := WrapText(m, content, family, size, maxWidth)
	if err != nil {
		return Fit{}, err
	}
	_, lineHeight, err := m.Measure(content, family, size)
	if err != nil {
		return Fit{}, err
	}
	return Fit{
		Size:       size,
		Lines:      lines,
		LineHeight: lineHeight,
		Height:     blockHeight(len(lines), lineHeight, spacing),
	}, nil
}

func blockHeight(lineCount, lineHeight, spacing int) int {
	if lineCount == 0 {
		return 0
	}
	return lineCount*lineHeight + (lineCount-1)*spacing
}
