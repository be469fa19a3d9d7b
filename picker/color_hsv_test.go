package picker

import (
	"image/color"
	"math"
	"testing"
)

func TestHSVAToRGBA(t *testing.T) {
	cases := []struct {
		h, s, v, a float64
		want       color.RGBA
	}{
		{0, 1, 1, 1, color.RGBA{255, 0, 0, 255}},
		{120, 1, 1, 1, color.RGBA{0, 255, 0, 255}},
		{240, 1, 1, 1, color.RGBA{0, 0, 255, 255}},
		{60, 1, 1, 1, color.RGBA{255, 255, 0, 255}},
		{0, 0, 1, 1, color.RGBA{255, 255, 255, 255}},
		{0, 0, 0, 1, color.RGBA{0, 0, 0, 255}},
		{360, 1, 1, 0.5, color.RGBA{255, 0, 0, 127}},
		{-120, 1, 1, 1, color.RGBA{0, 0, 255, 255}},
	}
	for _, c := range cases {
		if got := hsvaToRGBA(c.h, c.s, c.v, c.a); got != c.want {
			t.Fatalf("hsvaToRGBA(%v,%v,%v,%v) = %+v, want %+v", c.h, c.s, c.v, c.a, got, c.want)
		}
	}
}

func TestRGBAToHSVA(t *testing.T) {
	h, s, v, a := rgbaToHSVA(color.RGBA{0, 255, 0, 255})
	if h != 120 || s != 1 || v != 1 || a != 1 {
		t.Fatalf("green gave h=%v s=%v v=%v a=%v", h, s, v, a)
	}
	h, s, _, _ = rgbaToHSVA(color.RGBA{128, 128, 128, 255})
	if h != 0 || s != 0 {
		t.Fatalf("gray gave h=%v s=%v", h, s)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 30 {
		for _, s := range []float64{0.5, 0.75, 1} {
			for _, v := range []float64{0.5, 0.75, 1} {
				c := hsvaToRGBA(h, s, v, 1)
				h2, s2, v2, _ := rgbaToHSVA(c)
				if math.Abs(h2-h) > 2.5 || math.Abs(s2-s) > 0.03 || math.Abs(v2-v) > 0.03 {
					t.Fatalf("h=%v s=%v v=%v round-tripped to %v/%v/%v", h, s, v, h2, s2, v2)
				}
			}
		}
	}
}

func TestColorJSONRoundTrip(t *testing.T) {
	orig := NewColor(204, 51, 0, 255)
	data, err := orig.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Color
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	o, g := orig.ToRGBA(), got.ToRGBA()
	if math.Abs(float64(o.R)-float64(g.R)) > 1 ||
		math.Abs(float64(o.G)-float64(g.G)) > 1 ||
		math.Abs(float64(o.B)-float64(g.B)) > 1 || o.A != g.A {
		t.Fatalf("round trip %+v -> %+v", o, g)
	}
}

func TestColorUnmarshalFormats(t *testing.T) {
	var c Color
	if err := c.UnmarshalJSON([]byte(`"#ff8000"`)); err != nil {
		t.Fatalf("hex: %v", err)
	}
	if c != NewColor(255, 128, 0, 255) {
		t.Fatalf("hex parsed as %+v", c)
	}

	if err := c.UnmarshalJSON([]byte(`"#11223344"`)); err != nil {
		t.Fatalf("hex8: %v", err)
	}
	if c != NewColor(0x11, 0x22, 0x33, 0x44) {
		t.Fatalf("hex8 parsed as %+v", c)
	}

	if err := c.UnmarshalJSON([]byte(`{"R":1,"G":2,"B":3,"A":4}`)); err != nil {
		t.Fatalf("rgba object: %v", err)
	}
	if c != NewColor(1, 2, 3, 4) {
		t.Fatalf("rgba object parsed as %+v", c)
	}

	if err := c.UnmarshalJSON([]byte(`"120,1,1"`)); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if c != NewColor(0, 255, 0, 255) {
		t.Fatalf("csv parsed as %+v", c)
	}

	if err := c.UnmarshalJSON([]byte(`"not a color"`)); err == nil {
		t.Fatalf("garbage accepted")
	}
}

func TestClamp(t *testing.T) {
	if clamp(-1, 0, 1) != 0 || clamp(2, 0, 1) != 1 || clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("clamp misbehaves")
	}
}
