package picker

import "math"

// containsPoint checks whether the given point lies within the rectangle.
func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X <= r.X1 && p.Y <= r.Y1
}

func pointAdd(a, b point) point { return point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b point) point { return point{X: a.X - b.X, Y: a.Y - b.Y} }

// resolveHit derives the geometry used for classification and state
// updates. The radius base subtracts the full ring thickness so the hit
// band covers the inner half of the painted stroke.
func resolveHit(size point, thickness float32) geometry {
	return resolve(minExtent(size)/2-thickness, size, thickness)
}

// resolvePaint derives the geometry used when drawing. The radius base
// subtracts half the thickness so the stroke is centered on the visible
// ring. The two bases intentionally differ; unifying them would shift the
// clickable band relative to the painted stroke.
func resolvePaint(size point, thickness float32) geometry {
	return resolve(minExtent(size)/2-thickness/2, size, thickness)
}

func resolve(radius float32, size point, thickness float32) geometry {
	return geometry{
		center:     point{X: size.X / 2, Y: size.Y / 2},
		ringRadius: radius,
		squareHalf: (radius - thickness/2) / float32(math.Sqrt2),
	}
}

// degenerate reports whether the container is too small to host the
// control. Callers skip classification and painting in that case.
func (g geometry) degenerate() bool { return g.ringRadius <= 0 }

func minExtent(size point) float32 {
	if size.X < size.Y {
		return size.X
	}
	return size.Y
}
