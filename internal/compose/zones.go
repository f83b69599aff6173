package compose

import (
	"fmt"
	"image"
	"math"
)

// AllocateZones partitions a canvas of the given dimensions into the three
// safe-zone bands. The bands are contiguous, stacked top to bottom, and cover
// the full canvas height; the bottom band absorbs integer rounding so the
// fractions must sum to 1. The middle band is reserved and never receives
// text. A *LayoutError is returned when the padding leaves a text-bearing
// zone without positive usable area.
func AllocateZones(width, height int, l Layout) ([]Zone, error) {
	if sum := l.TopFraction + l.MiddleFraction + l.BottomFraction; math.Abs(sum-1) > 1e-3 {
		return nil, fmt.Errorf("compose: zone fractions %v/%v/%v sum to %v, want 1",
			l.TopFraction, l.MiddleFraction, l.BottomFraction, sum)
	}

	topH := int(float64(height) * l.TopFraction)
	midH := int(float64(height) * l.MiddleFraction)
	bottomH := height - topH - midH

	zones := []Zone{
		{Name: ZoneTop, Rect: image.Rect(0, 0, width, topH)},
		{Name: ZoneMiddle, Rect: image.Rect(0, topH, width, topH+midH), Reserved: true},
		{Name: ZoneBottom, Rect: image.Rect(0, topH+midH, width, topH+midH+bottomH)},
	}

	for _, z := range zones {
		if z.Reserved {
			continue
		}
		usable := z.Usable(l.Padding)
		if usable.Dx() <= 0 || usable.Dy() <= 0 {
			return nil, &LayoutError{Zone: z.Name, Width: usable.Dx(), Height: usable.Dy()}
		}
	}

	return zones, nil
}
