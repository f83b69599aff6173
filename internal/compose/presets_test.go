package compose

import (
	"errors"
	"testing"
)

func TestResolveSizePresets(t *testing.T) {
	cases := []struct {
		preset string
		width  int
		height int
	}{
		{"instagram_square", 1080, 1080},
		{"instagram_story", 1080, 1920},
		{"facebook_feed", 1200, 628},
		{"Telegram", 1280, 720}, // case-insensitive
	}
	for _, tc := range cases {
		w, h, err := ResolveSize(tc.preset)
		if err != nil {
			t.Fatalf("ResolveSize(%q) returned error: %v", tc.preset, err)
		}
		if w != tc.width || h != tc.height {
			t.Fatalf("ResolveSize(%q) mismatch: got %dx%d want %dx%d", tc.preset, w, h, tc.width, tc.height)
		}
	}
}

func TestResolveSizeExplicitDimensions(t *testing.T) {
	w, h, err := ResolveSize("800x418")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 800 || h != 418 {
		t.Fatalf("dimensions mismatch: got %dx%d want 800x418", w, h)
	}
}

func TestResolveSizeUnknownPreset(t *testing.T) {
	for _, preset := range []string{"polaroid", "0x100", "100x", "x100"} {
		_, _, err := ResolveSize(preset)
		var presetErr *UnknownPresetError
		if !errors.As(err, &presetErr) {
			t.Fatalf("ResolveSize(%q): expected UnknownPresetError, got %v", preset, err)
		}
		if presetErr.Name != preset {
			t.Fatalf("preset name mismatch: got %q want %q", presetErr.Name, preset)
		}
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("expected at least one preset")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
