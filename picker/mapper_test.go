package picker

import (
	"math"
	"testing"
)

// Test that placing the ring thumb for a hue and mapping the resulting
// vector back recovers the same hue, apart from the 0/360 wrap boundary.
func TestHueRoundTrip(t *testing.T) {
	center := point{X: 100, Y: 100}
	for h := 0.0; h < 360; h += 0.5 {
		v := hueToVector(h*math.Pi/180, 84, center)
		got := vectorToHue(pointSub(v, center))
		diff := math.Abs(got - h)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 1e-3 {
			t.Fatalf("hue %v round-tripped to %v (diff %v)", h, got, diff)
		}
	}
}

func TestHueRange(t *testing.T) {
	vectors := []point{
		{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
		{X: -3, Y: -4}, {X: 0.001, Y: -0.001},
	}
	for _, v := range vectors {
		h := vectorToHue(v)
		if h < 0 || h >= 360 {
			t.Fatalf("hue %v for vector %+v outside [0,360)", h, v)
		}
	}
}

func TestVectorToHueQuadrants(t *testing.T) {
	cases := []struct {
		v    point
		want float64
	}{
		{point{X: 1, Y: 0}, 0},
		{point{X: 0, Y: 1}, 90},
		{point{X: -1, Y: 0}, 180},
		{point{X: 0, Y: -1}, 270},
	}
	for _, c := range cases {
		if got := vectorToHue(c.v); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("vectorToHue(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSaturationRoundTrip(t *testing.T) {
	const half = 53.7
	for s := 0.0; s <= 1.0; s += 0.01 {
		x := saturationToVector(s, half, 0)
		got := vectorToSaturation(x, half)
		if math.Abs(got-s) > 1e-6 {
			t.Fatalf("saturation %v round-tripped to %v", s, got)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	const half = 53.7
	for v := 0.0; v <= 1.0; v += 0.01 {
		y := valueToVector(v, half, 0)
		got := vectorToValue(y, half)
		if math.Abs(got-v) > 1e-6 {
			t.Fatalf("value %v round-tripped to %v", v, got)
		}
	}
}

// Test that out-of-geometry vectors saturate at the component limits
// instead of producing invalid values.
func TestSaturationValueClamped(t *testing.T) {
	const half = 50
	if got := vectorToSaturation(-half*3, half); got != 0 {
		t.Fatalf("saturation for far-left vector = %v, want 0", got)
	}
	if got := vectorToSaturation(half*3, half); got != 1 {
		t.Fatalf("saturation for far-right vector = %v, want 1", got)
	}
	if got := vectorToValue(half*3, half); got != 0 {
		t.Fatalf("value for far-down vector = %v, want 0", got)
	}
	if got := vectorToValue(-half*3, half); got != 1 {
		t.Fatalf("value for far-up vector = %v, want 1", got)
	}
}

func TestSaturationDirection(t *testing.T) {
	const half = 50
	left := vectorToSaturation(-10, half)
	right := vectorToSaturation(10, half)
	if left >= right {
		t.Fatalf("saturation should increase left to right: %v >= %v", left, right)
	}
	up := vectorToValue(-10, half)
	down := vectorToValue(10, half)
	if up <= down {
		t.Fatalf("value should increase bottom to top: %v <= %v", up, down)
	}
}
