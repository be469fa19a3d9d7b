package picker

import "image/color"

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

// Region identifies which part of the control a gesture targets. It is
// decided once on pointer-down and held for the rest of the drag.
type Region int

const (
	RegionRing Region = iota
	RegionSquare
)

type point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

// geometry holds the derived placement values for one container size.
// ringRadius differs between the hit-test and paint paths; see resolve.
type geometry struct {
	center     point
	ringRadius float32
	squareHalf float32
}

// Exported type aliases for library consumers

type Point = point

type Rect = rect
