// Package picker implements a hue-ring color picker for Ebitengine: a
// circular hue band with an inscribed saturation/value square, driven by a
// single primary pointer and repainted in full every frame.
package picker

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Picker holds the color state of one picker session. It is mutated only
// from pointer events and read by Draw between mutations; a single
// goroutine (the game loop) owns it.
type Picker struct {
	cfg Config

	hue, sat, val, alpha float64

	activeRegion Region
	dragging     bool

	// Dirty is set on every state change so hosts that cache their frame
	// know a repaint is due. Draw clears it.
	Dirty bool

	// OnColorChange is invoked with the resulting RGBA color after every
	// pointer-down and pointer-move update.
	OnColorChange func(Color)

	// Handler optionally receives EventColorChanged events.
	Handler *EventHandler

	// shade caches the rendered saturation/value square for the current
	// hue and size.
	shade     *ebiten.Image
	shadeHue  float64
	shadeSize int
}

// NewPicker validates cfg and creates a picker seeded from the initial
// color. All HSV components and alpha are taken from initial.
func NewPicker(cfg Config, initial Color) (*Picker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p := &Picker{cfg: cfg, Dirty: true}
	p.hue, p.sat, p.val, p.alpha = rgbaToHSVA(color.RGBA(initial))
	return p, nil
}

// Config returns the picker's immutable configuration.
func (p *Picker) Config() Config { return p.cfg }

// Color returns the current selection as RGBA.
func (p *Picker) Color() Color {
	return Color(hsvaToRGBA(p.hue, p.sat, p.val, p.alpha))
}

// HSV returns the current hue, saturation, value and alpha components.
func (p *Picker) HSV() (h, s, v, a float64) {
	return p.hue, p.sat, p.val, p.alpha
}

// SetHSV assigns all color components programmatically. Hue wraps into
// [0,360); saturation and value are clamped.
func (p *Picker) SetHSV(h, s, v float64) {
	p.hue = wrapHue(h)
	p.sat = clamp(s, 0, 1)
	p.val = clamp(v, 0, 1)
	p.markDirty()
}

// SetColor reconciles the picker with an externally supplied color. Alpha
// is always adopted. When ReconcileExternal is set, saturation and value
// are overwritten from c while hue is left untouched: hue is the ring's
// own authority, the external source is assumed to mutate the square's
// components.
func (p *Picker) SetColor(c Color) {
	_, s, v, a := rgbaToHSVA(color.RGBA(c))
	p.alpha = a
	if p.cfg.ReconcileExternal {
		p.sat = s
		p.val = v
	}
	p.markDirty()
}

// Region returns the region targeted by the current or most recent
// interaction.
func (p *Picker) Region() Region { return p.activeRegion }

func (p *Picker) markDirty() { p.Dirty = true }

// emit reports the current color to the handler and callback.
func (p *Picker) emit() {
	col := p.Color()
	p.Handler.Emit(UIEvent{
		Type:       EventColorChanged,
		Color:      col,
		Region:     p.activeRegion,
		Hue:        p.hue,
		Saturation: p.sat,
		Value:      p.val,
	})
	if p.OnColorChange != nil {
		p.OnColorChange(col)
	}
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
