package picker

import "math"

// The mapper converts pointer vectors (pointer position minus container
// origin minus ring center) to color components and back. The forward and
// inverse directions are exact numerical inverses of each other apart from
// clamping. Hue is measured counter-clockwise from the positive X axis,
// saturation increases left to right, value increases bottom to top.

// vectorToHue returns the hue angle in degrees [0,360) for a pointer vector.
func vectorToHue(v point) float64 {
	ang := math.Atan2(float64(v.Y), float64(v.X)) * 180 / math.Pi
	if ang < 0 {
		ang += 360
	}
	return math.Mod(ang, 360)
}

// hueToVector places the ring thumb for a hue given in radians.
func hueToVector(hueRad float64, radius float32, center point) point {
	return point{
		X: center.X + radius*float32(math.Cos(hueRad)),
		Y: center.Y + radius*float32(math.Sin(hueRad)),
	}
}

func vectorToSaturation(vx, squareHalf float32) float64 {
	return clamp(float64(vx)*0.5/float64(squareHalf)+0.5, 0, 1)
}

func vectorToValue(vy, squareHalf float32) float64 {
	return clamp(0.5-float64(vy)*0.5/float64(squareHalf), 0, 1)
}

func saturationToVector(s float64, squareHalf, centerX float32) float32 {
	return float32(s-0.5)*squareHalf/0.5 + centerX
}

func valueToVector(v float64, squareHalf, centerY float32) float32 {
	return float32(0.5-v)*squareHalf/0.5 + centerY
}
