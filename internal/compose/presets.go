package compose

import (
	"sort"
	"strconv"
	"strings"
)

// sizePresets maps named output formats to pixel dimensions. The table mirrors
// the platform formats the service targets.
var sizePresets = map[string][2]int{
	"instagram_square":   {1080, 1080},
	"instagram_portrait": {1080, 1350},
	"instagram_story":    {1080, 1920},
	"instagram_reels":    {1080, 1920},
	"facebook_feed":      {1200, 628},
	"telegram":           {1280, 720},
	"twitter":            {1200, 675},
	"tiktok":             {1080, 1920},
	"youtube_thumbnail":  {1280, 720},
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(sizePresets))
	for name := range sizePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveSize turns a preset name or a "WxH" literal into pixel dimensions.
// An unrecognized name yields an *UnknownPresetError.
func ResolveSize(preset string) (int, int, error) {
	name := strings.ToLower(strings.TrimSpace(preset))
	if dims, ok := sizePresets[name]; ok {
		return dims[0], dims[1], nil
	}
	if w, h, ok := parseDimensions(name); ok {
		return w, h, nil
	}
	return 0, 0, &UnknownPresetError{Name: preset}
}

func parseDimensions(s string) (int, int, bool) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
