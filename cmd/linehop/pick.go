package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/linehop/internal/jump"
	"github.com/dshills/linehop/internal/textutil"
)

// pick shows the lines with their hint labels overlaid and waits for the
// user to type one. Returns nil when the selection is cancelled (Escape,
// Ctrl-C, or a key matching no label).
func pick(lines []string, targets []jump.Target) (*jump.Target, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	textStyle := tcell.StyleDefault
	labelStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)

	typed := ""
	for {
		screen.Clear()
		for y, line := range lines {
			drawText(screen, 0, y, textStyle, line)
		}
		for _, t := range targets {
			if !strings.HasPrefix(t.Label, typed) {
				continue
			}
			col := textutil.CellsBefore(lines[t.Line], t.Span.Start)
			drawText(screen, col, t.Line, labelStyle, strings.TrimPrefix(t.Label, typed))
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil, nil
			case ev.Key() == tcell.KeyRune:
				typed += string(ev.Rune())
				live := filterByPrefix(targets, typed)
				switch {
				case len(live) == 0:
					return nil, nil
				case len(live) == 1 && live[0].Label == typed:
					t := live[0]
					return &t, nil
				}
			}
		}
	}
}

// filterByPrefix returns the targets whose label starts with prefix.
func filterByPrefix(targets []jump.Target, prefix string) []jump.Target {
	var live []jump.Target
	for _, t := range targets {
		if strings.HasPrefix(t.Label, prefix) {
			live = append(live, t)
		}
	}
	return live
}

// drawText renders s starting at cell (x, y), advancing by display width.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += uniseg.StringWidth(string(r))
	}
}
