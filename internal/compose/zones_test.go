package compose

import (
	"errors"
	"testing"
)

func TestAllocateZonesDefaultFractions(t *testing.T) {
	zones, err := AllocateZones(1000, 1000, DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 3 {
		t.Fatalf("zone count mismatch: got %d want 3", len(zones))
	}

	top, middle, bottom := zones[0], zones[1], zones[2]
	if top.Name != ZoneTop || middle.Name != ZoneMiddle || bottom.Name != ZoneBottom {
		t.Fatalf("zone order mismatch: %v %v %v", top.Name, middle.Name, bottom.Name)
	}
	if top.Rect.Dy() != 300 || middle.Rect.Dy() != 400 || bottom.Rect.Dy() != 300 {
		t.Fatalf("band heights mismatch: %d/%d/%d", top.Rect.Dy(), middle.Rect.Dy(), bottom.Rect.Dy())
	}
	if top.Rect.Max.Y != middle.Rect.Min.Y || middle.Rect.Max.Y != bottom.Rect.Min.Y {
		t.Fatalf("bands are not contiguous: %v %v %v", top.Rect, middle.Rect, bottom.Rect)
	}
	if top.Rect.Min.Y != 0 || bottom.Rect.Max.Y != 1000 {
		t.Fatalf("bands do not cover canvas: %v %v", top.Rect, bottom.Rect)
	}
	if top.Reserved || bottom.Reserved {
		t.Fatal("top/bottom must not be reserved")
	}
	if !middle.Reserved {
		t.Fatal("middle zone must be reserved")
	}
}

func TestAllocateZonesUsableInsets(t *testing.T) {
	l := DefaultLayout()
	l.Padding = 40
	zones, err := AllocateZones(1080, 1080, l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	usable := zones[0].Usable(l.Padding)
	if usable.Dx() != 1000 {
		t.Fatalf("usable width mismatch: got %d want 1000", usable.Dx())
	}
	if usable.Dy() != zones[0].Rect.Dy()-80 {
		t.Fatalf("usable height mismatch: got %d want %d", usable.Dy(), zones[0].Rect.Dy()-80)
	}
}

func TestAllocateZonesCustomFractions(t *testing.T) {
	l := DefaultLayout()
	l.TopFraction, l.MiddleFraction, l.BottomFraction = 0.5, 0.0, 0.5
	l.Padding = 10
	zones, err := AllocateZones(400, 400, l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zones[1].Rect.Dy() != 0 {
		t.Fatalf("middle band height mismatch: got %d want 0", zones[1].Rect.Dy())
	}
	if zones[0].Rect.Dy() != 200 || zones[2].Rect.Dy() != 200 {
		t.Fatalf("band heights mismatch: %d/%d", zones[0].Rect.Dy(), zones[2].Rect.Dy())
	}
}

func TestAllocateZonesBottomBandAbsorbsRounding(t *testing.T) {
	zones, err := AllocateZones(1000, 1001, DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1001 * 0.30 and * 0.40 truncate to 300 and 400; the bottom band takes
	// the remaining 301 pixels so the canvas stays fully covered.
	if zones[2].Rect.Dy() != 301 {
		t.Fatalf("bottom band height mismatch: got %d want 301", zones[2].Rect.Dy())
	}
	if zones[2].Rect.Max.Y != 1001 {
		t.Fatalf("bands do not cover canvas: bottom ends at %d", zones[2].Rect.Max.Y)
	}
}

func TestAllocateZonesRejectsFractionsNotSummingToOne(t *testing.T) {
	l := DefaultLayout()
	l.BottomFraction = 0.50

	_, err := AllocateZones(1000, 1000, l)
	if err == nil {
		t.Fatal("expected error for fractions summing past 1")
	}

	l.BottomFraction = 0.10
	if _, err := AllocateZones(1000, 1000, l); err == nil {
		t.Fatal("expected error for fractions summing below 1")
	}
}

func TestAllocateZonesPaddingCollapsesZone(t *testing.T) {
	l := DefaultLayout()
	l.Padding = 200 // exceeds half the 300px top band

	_, err := AllocateZones(1000, 1000, l)
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}
	if layoutErr.Zone != ZoneTop {
		t.Fatalf("offending zone mismatch: got %q want %q", layoutErr.Zone, ZoneTop)
	}
}

func TestAllocateZonesPaddingCollapsesWidth(t *testing.T) {
	l := DefaultLayout()
	l.Padding = 30

	_, err := AllocateZones(50, 1000, l)
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}
}
