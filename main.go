package main

import (
	"flag"
	"log"
	"os"

	"huering/picker"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	clipboard "golang.design/x/clipboard"
)

var doDebug bool

func main() {
	thickness := flag.Float64("thickness", 0, "ring thickness in pixels [4,50], 0 keeps the saved setting")
	border := flag.Bool("border", true, "draw ring and square borders")
	colorFlag := flag.String("color", "", "initial color as #RRGGBB hex")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.Parse()

	setupLogging(doDebug)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	}

	loadSettings()
	if *thickness != 0 {
		gs.RingThickness = float32(*thickness)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "border" {
			gs.DrawBorder = *border
		}
	})

	initial := gs.LastColor
	if *colorFlag != "" {
		c, err := colorful.Hex(*colorFlag)
		if err != nil {
			logError("parse -color %q: %v", *colorFlag, err)
			os.Exit(1)
		}
		r, g, b := c.RGB255()
		initial = picker.NewColor(r, g, b, 255)
	}

	cfg := picker.Config{
		RingThickness: gs.RingThickness,
		DrawBorder:    gs.DrawBorder,
	}
	p, err := picker.NewPicker(cfg, initial)
	if err != nil {
		logError("picker config: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("huering")

	g, err := newGame(p)
	if err != nil {
		logError("init: %v", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	saveSettings()
}
