package compose

import (
	"image"
	"reflect"
	"testing"
)

func fitLayout() Layout {
	l := DefaultLayout()
	l.LineSpacing = 0
	return l
}

func TestFitBlockKeepsRequestedSizeWhenItFits(t *testing.T) {
	blk := TextBlock{Content: "aa bb", RequestedSize: 30, MinSize: 10}
	fit, err := FitBlock(stubMetrics{}, blk, "text", image.Rect(0, 0, 200, 100), fitLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Size != 30 {
		t.Fatalf("size mismatch: got %d want 30", fit.Size)
	}
	if fit.Overflow {
		t.Fatal("unexpected overflow")
	}
}

func TestFitBlockReturnsLargestFittingSize(t *testing.T) {
	// With the stub metrics, sizes 26..40 wrap to four lines that exceed the
	// 50px height while 24 wraps to two lines of 48px total.
	blk := TextBlock{Content: "aa bb cc dd", RequestedSize: 40, MinSize: 20}
	fit, err := FitBlock(stubMetrics{}, blk, "text", image.Rect(0, 0, 60, 50), fitLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Size != 24 {
		t.Fatalf("size mismatch: got %d want 24", fit.Size)
	}
	want := []string{"aa bb", "cc dd"}
	if !reflect.DeepEqual(fit.Lines, want) {
		t.Fatalf("lines mismatch: got %q want %q", fit.Lines, want)
	}
	if fit.Overflow {
		t.Fatal("unexpected overflow")
	}
	if fit.Height > 50 {
		t.Fatalf("height %d exceeds usable height", fit.Height)
	}
}

func TestFitBlockProbesMinimumOffStep(t *testing.T) {
	// 25 -> 23 -> 21 leaves the floor of 20 unvisited by the 2pt step; the
	// search must still probe it before giving up.
	blk := TextBlock{Content: "aa bb cc dd", RequestedSize: 25, MinSize: 20}
	fit, err := FitBlock(stubMetrics{}, blk, "text", image.Rect(0, 0, 60, 41), fitLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Size != 20 {
		t.Fatalf("size mismatch: got %d want 20", fit.Size)
	}
	if fit.Overflow {
		t.Fatal("unexpected overflow")
	}
}

func TestFitBlockClampsAndOverflowsBelowMinimum(t *testing.T) {
	blk := TextBlock{Content: "aa bb cc dd", RequestedSize: 40, MinSize: 20}
	fit, err := FitBlock(stubMetrics{}, blk, "text", image.Rect(0, 0, 60, 10), fitLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Size != 20 {
		t.Fatalf("size mismatch: got %d want 20", fit.Size)
	}
	if !fit.Overflow {
		t.Fatal("expected overflow at minimum size")
	}
	if len(fit.Lines) == 0 {
		t.Fatal("overflowing block must keep its wrapped lines intact")
	}
	if fit.Height <= 10 {
		t.Fatalf("overflow block height %d should exceed the zone", fit.Height)
	}
}

func TestFitBlockDegenerateRange(t *testing.T) {
	// Requested below the floor narrows the range to the requested size.
	blk := TextBlock{Content: "aa", RequestedSize: 16, MinSize: 24}
	fit, err := FitBlock(stubMetrics{}, blk, "text", image.Rect(0, 0, 500, 500), fitLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.Size != 16 {
		t.Fatalf("size mismatch: got %d want 16", fit.Size)
	}
}
