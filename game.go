package main

import (
	"bytes"
	"image/color"

	"huering/picker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	clipboard "golang.design/x/clipboard"
	"golang.org/x/image/font/gofont/goregular"
)

// bottomBarH is the height of the swatch and label strip below the picker.
const bottomBarH = 48

type Game struct {
	picker *picker.Picker
	face   *text.GoTextFace
	hex    string
	w, h   int
}

func newGame(p *picker.Picker) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	g := &Game{
		picker: p,
		face:   &text.GoTextFace{Source: src, Size: 16},
		w:      gs.WindowWidth,
		h:      gs.WindowHeight,
	}
	g.hex = hexString(p.Color())
	p.OnColorChange = func(c picker.Color) {
		g.hex = hexString(c)
		gs.LastColor = c
		logDebug("color %s", g.hex)
	}
	return g, nil
}

func hexString(c picker.Color) string {
	rgba := c.ToRGBA()
	return colorful.Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
	}.Hex()
}

func (g *Game) pickerSize() picker.Point {
	return picker.Point{X: float32(g.w), Y: float32(g.h - bottomBarH)}
}

func (g *Game) Update() error {
	g.picker.Update(picker.Point{}, g.pickerSize())

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		clipboard.Write(clipboard.FmtText, []byte(g.hex))
		logDebug("copied %s", g.hex)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 32, G: 32, B: 32, A: 255})
	g.picker.Draw(screen, picker.Point{}, g.pickerSize())

	sy := float32(g.h - bottomBarH + 8)
	vector.DrawFilledRect(screen, 8, sy, 32, 32, g.picker.Color().ToRGBA(), true)
	vector.StrokeRect(screen, 8, sy, 32, 32, 1, color.Black, true)

	top := &text.DrawOptions{}
	top.GeoM.Translate(48, float64(g.h-bottomBarH+14))
	top.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, g.hex+"   press C to copy", g.face, top)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		gs.WindowWidth, gs.WindowHeight = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}
