package picker

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints the whole control into dst for a container located at origin
// with the given size. It is a pure function of the picker state and safe
// to call every frame; nothing is drawn when the container is too small to
// yield a positive ring radius. Layers back to front: hue ring, optional
// ring borders, shade square, optional square border, ring thumb, square
// thumb.
func (p *Picker) Draw(dst *ebiten.Image, origin, size point) {
	g := resolvePaint(size, p.cfg.RingThickness)
	if g.degenerate() {
		return
	}
	center := pointAdd(origin, g.center)

	p.drawRing(dst, center, g)
	if p.cfg.DrawBorder {
		col := p.cfg.borderColor().ToRGBA()
		vector.StrokeCircle(dst, center.X, center.Y, g.ringRadius-p.cfg.RingThickness/2, 1, col, true)
		vector.StrokeCircle(dst, center.X, center.Y, g.ringRadius+p.cfg.RingThickness/2, 1, col, true)
	}

	p.drawShadeSquare(dst, center, g)
	if p.cfg.DrawBorder {
		strokeRoundRect(dst,
			center.X-g.squareHalf, center.Y-g.squareHalf,
			g.squareHalf*2, g.squareHalf*2,
			squareFillet, 1, p.cfg.borderColor())
	}

	p.drawThumbs(dst, center, g)
	p.Dirty = false
}

// drawRing strokes the hue ring as one arc per segment, fully saturated
// and fully valued at each angle. Every slice is widened by half a step on
// both ends so anti-aliased edges of neighbouring slices overlap instead
// of leaving seams.
func (p *Picker) drawRing(dst *ebiten.Image, center point, g geometry) {
	segs := p.cfg.segments()
	step := 2 * math.Pi / float64(segs)
	overlap := step / 2
	strokeOp := &vector.StrokeOptions{Width: p.cfg.RingThickness}
	for i := 0; i < segs; i++ {
		a0 := float64(i)*step - overlap
		a1 := float64(i+1)*step + overlap
		var path vector.Path
		path.MoveTo(
			center.X+g.ringRadius*float32(math.Cos(a0)),
			center.Y+g.ringRadius*float32(math.Sin(a0)))
		path.Arc(center.X, center.Y, g.ringRadius, float32(a0), float32(a1), vector.Clockwise)
		drawOp := &vector.DrawPathOptions{AntiAlias: true}
		drawOp.ColorScale.ScaleWithColor(hsvaToRGBA(float64(i)*360/float64(segs), 1, 1, 1))
		vector.StrokePath(dst, &path, strokeOp, drawOp)
	}
}

func (p *Picker) drawShadeSquare(dst *ebiten.Image, center point, g geometry) {
	sz := int(g.squareHalf * 2)
	if sz < 1 {
		return
	}
	if p.shade == nil || p.shadeSize != sz || p.shadeHue != p.hue {
		p.shade = shadeSquareImage(sz, p.hue)
		p.shadeSize = sz
		p.shadeHue = p.hue
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Translate(float64(center.X-g.squareHalf), float64(center.Y-g.squareHalf))
	dst.DrawImage(p.shade, op)
}

// shadeSquareImage renders the saturation/value palette for the given hue:
// saturation runs left to right, value bottom to top, which composites a
// white-to-hue horizontal gradient with a transparent-to-black vertical
// one. Corners are rounded with a 4x4 grid of subpixel coverage samples.
func shadeSquareImage(size int, hue float64) *ebiten.Image {
	if size <= 0 {
		return newImage(1, 1)
	}
	img := newImage(size, size)
	offsets := []float64{0.125, 0.375, 0.625, 0.875}
	max := float64(size - 1)
	if max == 0 {
		max = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cov := cornerCoverage(float64(x), float64(y), float64(size), squareFillet, offsets)
			if cov == 0 {
				img.Set(x, y, color.Transparent)
				continue
			}
			col := hsvaToRGBA(hue, float64(x)/max, 1-float64(y)/max, 1)
			img.Set(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(cov*255 + 0.5)})
		}
	}
	return img
}

// cornerCoverage returns the sub-pixel coverage of a pixel against the
// rounded corners. Pixels outside the four corner boxes are fully covered.
func cornerCoverage(x, y, size, fillet float64, offsets []float64) float64 {
	var cx, cy float64
	switch {
	case x < fillet && y < fillet:
		cx, cy = fillet, fillet
	case x >= size-fillet && y < fillet:
		cx, cy = size-fillet, fillet
	case x < fillet && y >= size-fillet:
		cx, cy = fillet, size-fillet
	case x >= size-fillet && y >= size-fillet:
		cx, cy = size-fillet, size-fillet
	default:
		return 1
	}
	hit := 0
	for _, oy := range offsets {
		for _, ox := range offsets {
			if math.Hypot(x+ox-cx, y+oy-cy) <= fillet {
				hit++
			}
		}
	}
	return float64(hit) / float64(len(offsets)*len(offsets))
}

func (p *Picker) drawThumbs(dst *ebiten.Image, center point, g geometry) {
	r := thumbRadius(p.cfg.RingThickness)

	rp := hueToVector(p.hue*math.Pi/180, g.ringRadius, center)
	drawThumb(dst, rp.X, rp.Y, r)

	sx := saturationToVector(p.sat, g.squareHalf, center.X)
	sy := valueToVector(p.val, g.squareHalf, center.Y)
	drawThumb(dst, sx, sy, r)
}

// drawThumb paints the halo indicator: a wide black ring with a narrower
// white ring on the same center.
func drawThumb(dst *ebiten.Image, x, y, r float32) {
	vector.StrokeCircle(dst, x, y, r, 4, color.Black, true)
	vector.StrokeCircle(dst, x, y, r, 2, color.White, true)
}

func thumbRadius(thickness float32) float32 {
	r := thickness * 0.4
	if r < 6 {
		r = 6
	}
	return r
}
