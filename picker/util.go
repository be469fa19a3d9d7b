package picker

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func newImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}

// strokeRoundRect outlines a rounded rectangle with quadratic corner
// curves.
func strokeRoundRect(dst *ebiten.Image, x, y, w, h, fillet, width float32, col Color) {
	if fillet*2 > w {
		fillet = w / 2
	}
	if fillet*2 > h {
		fillet = h / 2
	}

	var path vector.Path
	path.MoveTo(x+fillet, y)
	path.LineTo(x+w-fillet, y)
	path.QuadTo(x+w, y, x+w, y+fillet)
	path.LineTo(x+w, y+h-fillet)
	path.QuadTo(x+w, y+h, x+w-fillet, y+h)
	path.LineTo(x+fillet, y+h)
	path.QuadTo(x, y+h, x, y+h-fillet)
	path.LineTo(x, y+fillet)
	path.QuadTo(x, y, x+fillet, y)
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: width}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(col.ToRGBA())
	vector.StrokePath(dst, &path, strokeOp, drawOp)
}
