package main

import (
	"fmt"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

var kindStyles = map[painting.Kind]tcell.Style{
	painting.Canvas:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	painting.Tree:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	painting.River:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	painting.Cloud:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
	painting.Mountain: tcell.StyleDefault.Foreground(tcell.ColorPurple),
}

// Draw puts the results on screen one below the other, each grid followed
// by its value.
func Draw(screen tcell.Screen, results []*Result) {
	screen.Clear()

	y := 0
	for _, r := range results {
		drawText(screen, 0, y, tcell.StyleDefault.Bold(true), r.Name)
		y++

		for row := range r.Surface.Height() {
			for col := range r.Surface.Width() {
				kind := r.Surface.Locate(col, row)
				drawGlyph(screen, col*cellWidth, y, kindStyles[kind], kind.Glyph())
			}
			y++
		}

		drawText(screen, 0, y, tcell.StyleDefault, fmt.Sprintf("value %d", r.Surface.Value()))
		y += 2
	}

	drawText(screen, 0, y, tcell.StyleDefault.Dim(true), "press q to quit")
	screen.Show()
}

func drawGlyph(screen tcell.Screen, x, y int, style tcell.Style, glyph string) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	screen.SetContent(x, y, runes[0], runes[1:], style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// View shows the results until the user quits.
func View(screen tcell.Screen, results []*Result) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Draw(screen, results)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, results)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case nil:
			return nil
		}
	}
}
