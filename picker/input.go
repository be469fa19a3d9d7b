package picker

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

var (
	isWasm       = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	wheelLimiter = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

// wheelValueStep is how far one wheel tick moves the value component when
// the cursor rests over the shade square.
const wheelValueStep = 0.05

// PointerDown begins an interaction at absolute position pos for a
// container located at origin with the given size. The targeted region is
// classified here and holds for the whole drag: the square wins only when
// the vector lies strictly inside both half-extents, so boundary ties go
// to the ring.
func (p *Picker) PointerDown(pos, origin, size point) {
	g := resolveHit(size, p.cfg.RingThickness)
	if g.degenerate() {
		return
	}
	v := pointSub(pointSub(pos, origin), g.center)
	p.activeRegion = classify(v, g)
	p.dragging = true
	p.applyVector(v, g)
}

// PointerMove updates the color for a drag in progress. The region chosen
// at PointerDown governs the update even when the pointer has left that
// region's bounds; components saturate at their limits instead.
func (p *Picker) PointerMove(pos, origin, size point) {
	if !p.dragging {
		return
	}
	g := resolveHit(size, p.cfg.RingThickness)
	if g.degenerate() {
		return
	}
	v := pointSub(pointSub(pos, origin), g.center)
	p.applyVector(v, g)
}

// PointerUp ends the interaction. The controller is idle until the next
// PointerDown.
func (p *Picker) PointerUp() { p.dragging = false }

// Dragging reports whether a pointer interaction is in progress.
func (p *Picker) Dragging() bool { return p.dragging }

func classify(v point, g geometry) Region {
	if abs32(v.X) < g.squareHalf && abs32(v.Y) < g.squareHalf {
		return RegionSquare
	}
	return RegionRing
}

func (p *Picker) applyVector(v point, g geometry) {
	if p.activeRegion == RegionSquare {
		p.sat = vectorToSaturation(v.X, g.squareHalf)
		p.val = vectorToValue(v.Y, g.squareHalf)
	} else {
		p.hue = vectorToHue(v)
	}
	p.markDirty()
	p.emit()
}

// Update is the per-frame hook for hosts that want the picker to poll
// Ebiten input itself. It drives PointerDown/PointerMove from the primary
// pointer and applies wheel fine-adjustment: ticks over the shade square
// nudge the value, ticks elsewhere on the control nudge the hue.
func (p *Picker) Update(origin, size point) {
	mx, my := PointerPosition()
	pos := point{X: float32(mx), Y: float32(my)}

	switch {
	case pointerJustPressed():
		g := resolveHit(size, p.cfg.RingThickness)
		if !g.degenerate() && onControl(pointSub(pos, origin), size) {
			p.PointerDown(pos, origin, size)
		}
	case pointerPressed():
		p.PointerMove(pos, origin, size)
	default:
		p.PointerUp()
	}

	if p.dragging {
		return
	}
	_, wy := pointerWheel()
	if wy == 0 {
		return
	}
	g := resolveHit(size, p.cfg.RingThickness)
	if g.degenerate() {
		return
	}
	rel := pointSub(pos, origin)
	if !onControl(rel, size) {
		return
	}
	if classify(pointSub(rel, g.center), g) == RegionSquare {
		p.val = clamp(p.val+wheelValueStep*wy, 0, 1)
	} else {
		p.hue = wrapHue(p.hue + wy)
	}
	p.markDirty()
	p.emit()
}

// onControl reports whether a container-relative position lies within the
// container bounds at all.
func onControl(rel, size point) bool {
	return rect{X1: size.X, Y1: size.Y}.containsPoint(rel)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// PointerPosition returns the current pointer position in screen pixels.
// If a touch is active, the first touch is used; otherwise the mouse
// cursor position is returned.
func PointerPosition() (int, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// pointerWheel returns the mouse wheel delta. Browser wheel events arrive
// in bursts with large deltas, so on wasm they are rate limited and
// squashed to a consistent +/-1 per tick.
func pointerWheel() (float64, float64) {
	wx, wy := ebiten.Wheel()
	if isWasm {
		if !wheelLimiter.Allow() {
			return 0, 0
		}
		if wx > 0 {
			wx = 1
		} else if wx < 0 {
			wx = -1
		}
		if wy > 0 {
			wy = 1
		} else if wy < 0 {
			wy = -1
		}
	}
	return wx, wy
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is currently pressed.
func pointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}
