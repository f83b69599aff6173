package compose

import (
	"reflect"
	"testing"
)

// stubMetrics measures text as len(text)*size/2 pixels wide with a line
// height equal to the size, keeping wrap and fit behavior easy to reason
// about in tests.
type stubMetrics struct{}

func (stubMetrics) Measure(text, family string, size int) (int, int, error) {
	return len(text) * size / 2, size, nil
}

func TestWrapTextGreedy(t *testing.T) {
	// At size 20 every character is 10px, so "aa bb" is 50px and adding
	// " cc" pushes past 60px.
	lines, err := WrapText(stubMetrics{}, "aa bb cc dd", "text", 20, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"aa bb", "cc dd"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines mismatch: got %q want %q", lines, want)
	}
}

func TestWrapTextSingleLineWhenItFits(t *testing.T) {
	lines, err := WrapText(stubMetrics{}, "aa bb cc", "text", 10, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "aa bb cc" {
		t.Fatalf("lines mismatch: got %q", lines)
	}
}

func TestWrapTextOverWideWordStandsAlone(t *testing.T) {
	lines, err := WrapText(stubMetrics{}, "hi incomprehensibilities go", "text", 20, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hi", "incomprehensibilities", "go"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("lines mismatch: got %q want %q", lines, want)
	}
}

func TestWrapTextEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		lines, err := WrapText(stubMetrics{}, input, "text", 20, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected zero lines for %q, got %q", input, lines)
		}
	}
}
