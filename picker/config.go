package picker

import "fmt"

const (
	// MinRingThickness and MaxRingThickness bound the accepted stroke
	// width of the hue ring.
	MinRingThickness = 4
	MaxRingThickness = 50

	defaultRingThickness = 20

	// defaultSegments is the number of angular slices the ring is painted
	// with, one per degree.
	defaultSegments = 360

	// squareFillet is the corner radius of the shade square.
	squareFillet = 4
)

var defaultBorderColor = NewColor(128, 128, 128, 255)

// Config holds the per-session options of a Picker. It is validated by
// NewPicker and immutable afterwards.
type Config struct {
	// RingThickness is the stroke width of the hue ring in pixels,
	// bounded to [MinRingThickness, MaxRingThickness].
	RingThickness float32

	// DrawBorder enables the concentric ring borders and the shade
	// square outline.
	DrawBorder bool

	// BorderColor is used for the borders when DrawBorder is set. The
	// zero value selects a neutral gray.
	BorderColor Color

	// ReconcileExternal makes SetColor overwrite saturation and value
	// from the externally supplied color while leaving hue untouched.
	ReconcileExternal bool

	// Segments overrides the number of ring slices. Zero selects the
	// default of one slice per degree.
	Segments int
}

// DefaultConfig returns the options used when the host has no opinion.
func DefaultConfig() Config {
	return Config{
		RingThickness: defaultRingThickness,
		DrawBorder:    true,
	}
}

func (cfg Config) validate() error {
	if cfg.RingThickness < MinRingThickness || cfg.RingThickness > MaxRingThickness {
		return fmt.Errorf("ring thickness %v outside [%v,%v]", cfg.RingThickness, MinRingThickness, MaxRingThickness)
	}
	if cfg.Segments < 0 {
		return fmt.Errorf("segment count %d is negative", cfg.Segments)
	}
	return nil
}

func (cfg Config) segments() int {
	if cfg.Segments == 0 {
		return defaultSegments
	}
	return cfg.Segments
}

func (cfg Config) borderColor() Color {
	if cfg.BorderColor == (Color{}) {
		return defaultBorderColor
	}
	return cfg.BorderColor
}
