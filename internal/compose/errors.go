package compose

import "fmt"

// LayoutError reports a zone whose usable rectangle collapsed to zero or a
// negative extent under the configured fractions and padding. It is a
// configuration error: the call fails before any rendering and is not retried.
type LayoutError struct {
	Zone   ZoneName
	Width  int
	Height int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("compose: zone %q has non-positive usable area %dx%d", e.Zone, e.Width, e.Height)
}

// UnknownPresetError reports an output size preset that is not in the preset
// table and does not parse as a "WxH" literal.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("compose: unknown size preset %q", e.Name)
}
