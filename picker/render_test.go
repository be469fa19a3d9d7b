package picker

import "testing"

func TestCornerCoverage(t *testing.T) {
	offsets := []float64{0.125, 0.375, 0.625, 0.875}
	const size, fillet = 100, 4.0

	// Pixel well inside a corner box but outside the corner circle.
	if cov := cornerCoverage(0, 0, size, fillet, offsets); cov != 0 {
		t.Fatalf("outer corner pixel coverage = %v, want 0", cov)
	}
	// Interior pixels are untouched by rounding.
	if cov := cornerCoverage(50, 50, size, fillet, offsets); cov != 1 {
		t.Fatalf("center pixel coverage = %v, want 1", cov)
	}
	// Edge midpoints are outside every corner box.
	if cov := cornerCoverage(50, 0, size, fillet, offsets); cov != 1 {
		t.Fatalf("edge midpoint coverage = %v, want 1", cov)
	}
	// The corner circle center itself is fully covered.
	if cov := cornerCoverage(fillet, fillet, size, fillet, offsets); cov != 1 {
		t.Fatalf("corner circle center coverage = %v, want 1", cov)
	}
	// All four corners behave alike.
	for _, p := range [][2]float64{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if cov := cornerCoverage(p[0], p[1], size, fillet, offsets); cov >= 0.5 {
			t.Fatalf("corner pixel (%v,%v) coverage = %v, want < 0.5", p[0], p[1], cov)
		}
	}
}

func TestThumbRadius(t *testing.T) {
	if r := thumbRadius(4); r != 6 {
		t.Fatalf("thin ring thumb radius = %v, want floor of 6", r)
	}
	if r := thumbRadius(50); r != 20 {
		t.Fatalf("thick ring thumb radius = %v, want 20", r)
	}
}
